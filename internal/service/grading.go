package service

import (
	"math"
	"strings"

	"skillpath_backend/internal/model"
)

// SubmittedAnswer is one answer in a quiz submission.
type SubmittedAnswer struct {
	QuestionID string            `json:"questionId" binding:"required"`
	Answer     model.AnswerValue `json:"answer"`
	TimeSpent  int               `json:"timeSpent"` // seconds
}

// GradeAttempt scores a submission against the quiz question list.
// Unanswered questions count as incorrect. Pure; no storage access.
func GradeAttempt(quiz *model.Quiz, answers []SubmittedAnswer) ([]model.AttemptAnswer, model.AttemptScore) {
	byQuestion := make(map[string]SubmittedAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	graded := make([]model.AttemptAnswer, 0, len(quiz.Questions))
	score := model.AttemptScore{
		TotalQuestions: len(quiz.Questions),
		TotalPoints:    0,
	}
	earned := 0

	for _, question := range quiz.Questions {
		score.TotalPoints += question.PointValue()

		submitted, answered := byQuestion[question.QuestionID]
		correct := answered && isCorrect(question, submitted.Answer)

		points := 0
		if correct {
			points = question.PointValue()
			earned += points
			score.Correct++
		} else {
			score.Incorrect++
		}

		if answered {
			graded = append(graded, model.AttemptAnswer{
				QuestionID:   question.QuestionID,
				UserAnswer:   submitted.Answer,
				IsCorrect:    correct,
				PointsEarned: points,
				TimeSpent:    submitted.TimeSpent,
			})
		}
	}

	if score.TotalPoints > 0 {
		score.Percentage = int(math.Round(float64(earned) / float64(score.TotalPoints) * 100))
	}

	return graded, score
}

func isCorrect(question model.Question, answer model.AnswerValue) bool {
	switch question.Type {
	case model.QuestionMCQ:
		// A choice answer is checked against the flagged option; any
		// other shape falls back to the correct-answer text.
		if answer.Kind == model.AnswerChoice {
			for _, option := range question.Options {
				if option.IsCorrect {
					return strings.EqualFold(option.OptionLetter, answer.Choice)
				}
			}
			return false
		}
		return equalAnswer(question.CorrectAnswer, answer.String())
	case model.QuestionTrueFalse:
		return equalAnswer(question.CorrectAnswer, answer.String())
	default:
		return equalAnswer(question.CorrectAnswer, answer.String())
	}
}

func equalAnswer(expected, got string) bool {
	return strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(got))
}

// buildFeedback summarizes an attempt for the learner: tag buckets from
// correct/incorrect questions plus a next step keyed to the percentage.
func buildFeedback(quiz *model.Quiz, graded []model.AttemptAnswer, score model.AttemptScore) model.AttemptFeedback {
	correctTags := map[string]bool{}
	incorrectTags := map[string]bool{}

	byID := make(map[string]model.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		byID[q.QuestionID] = q
	}

	for _, answer := range graded {
		question, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}
		for _, tag := range question.Tags {
			if answer.IsCorrect {
				correctTags[tag] = true
			} else {
				incorrectTags[tag] = true
			}
		}
	}

	feedback := model.AttemptFeedback{}
	for tag := range correctTags {
		if !incorrectTags[tag] {
			feedback.Strengths = append(feedback.Strengths, tag)
		}
	}
	for tag := range incorrectTags {
		feedback.Weaknesses = append(feedback.Weaknesses, tag)
	}

	switch {
	case score.Percentage >= 80:
		feedback.NextSteps = append(feedback.NextSteps, "move on to the next topic")
	case score.Percentage >= 50:
		feedback.Suggestions = append(feedback.Suggestions, "review the questions you missed before retaking")
	default:
		feedback.Suggestions = append(feedback.Suggestions, "revisit the topic resources before retaking this quiz")
		feedback.NextSteps = append(feedback.NextSteps, "retake the quiz after review")
	}

	return feedback
}
