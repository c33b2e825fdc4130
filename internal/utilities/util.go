// Package utilities contain utility code that use across the package
package utilities

import (
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alimadkour96/4a8lny/internal/errs"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// Response is the body of every successful request
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PageResponse is the body of a paginated list
type PageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Total   int64  `json:"total"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

// Success writes {message, data} with the given status.
func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Message: message, Data: data})
}

// Fail writes {message} with the status mapped from err.
// Errors outside the taxonomy are stored on the context for the request logger and reported generically.
func Fail(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	if status >= 500 {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: errs.Message(err)})
}

// BadRequest writes {message} with status 400.
func BadRequest(c *gin.Context, message string) {
	Fail(c, errs.Validation("%s", message))
}

// PathUUID parses the path parameter name as an ID, answering 400 when it is malformed.
func PathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// MergeNonEmpty help merge struct with non-empty field
func MergeNonEmpty(dst, src interface{}) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()

	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Field(i)
		if !sf.IsZero() {
			df := dv.FieldByName(sv.Type().Field(i).Name)
			if df.IsValid() && df.CanSet() {
				df.Set(sf)
			}
		}
	}
}
