package screening

import (
	"math"

	"github.com/alimadkour96/4a8lny/internal/model"
)

// WeightedScore is sum(score*points)/sum(points) over the evaluated answers, rounded.
// Answers without a score are skipped; a missing question weighs 1.
// It returns nil when nothing has been evaluated.
func WeightedScore(answers []model.Answer) *int {
	var total, weight float64
	for _, a := range answers {
		if !a.IsEvaluated() {
			continue
		}
		points := 1
		if a.Question != nil && a.Question.Points > 0 {
			points = a.Question.Points
		}
		total += float64(*a.Score * points)
		weight += float64(points)
	}
	if weight == 0 {
		return nil
	}
	score := int(math.Round(total / weight))
	score = min(max(score, 0), 100)
	return &score
}

// autoGrade compares the answer to the question's correct answer, case-sensitive.
func autoGrade(q *model.Question, answerText string) (correct bool, score int) {
	if answerText == q.CorrectAnswer {
		return true, 100
	}
	return false, 0
}
