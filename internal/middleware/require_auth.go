// Package middleware contain utilities middleware code
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
	"github.com/alimadkour96/4a8lny/internal/utilities"
)

// AdminHeader carries the id of the admin performing a moderation request.
const AdminHeader = "X-Admin-ID"

// adminKey is the gin context key of the authenticated admin.
const adminKey = "admin"

// RequireAdmin protects an endpoint group from anyone that is not a known admin.
// The admin is looked up by the id in AdminHeader and stored on the context for CurrentAdmin.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	admins := store.New[model.Admin](db, nil)
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader(AdminHeader)
		if raw == "" {
			utilities.Fail(ctx, errs.Unauthorized("%s header is required", AdminHeader))
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			utilities.BadRequest(ctx, "Invalid "+AdminHeader+" header")
			return
		}

		admin, err := admins.FindByID(ctx.Request.Context(), id)
		switch {
		case errs.Is(err, errs.KindNotFound):
			utilities.Fail(ctx, errs.Unauthorized("User doesn't have permission to access"))
			return
		case err != nil:
			utilities.Fail(ctx, err)
			return
		}

		ctx.Set(adminKey, admin)
		ctx.Next()
	}
}

// CurrentAdmin returns the admin stored by RequireAdmin.
func CurrentAdmin(ctx *gin.Context) (*model.Admin, bool) {
	v, ok := ctx.Get(adminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*model.Admin)
	return admin, ok
}
