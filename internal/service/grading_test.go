package service

import (
	"testing"

	"skillpath_backend/internal/model"
)

func sampleQuiz() *model.Quiz {
	return &model.Quiz{
		Category: "go-basics",
		Questions: model.QuestionList{
			{
				QuestionID: "q1",
				Type:       model.QuestionMCQ,
				Points:     2,
				Tags:       []string{"syntax"},
				Options: []model.Option{
					{OptionLetter: "A", Text: "wrong"},
					{OptionLetter: "B", Text: "right", IsCorrect: true},
				},
			},
			{
				QuestionID:    "q2",
				Type:          model.QuestionTrueFalse,
				CorrectAnswer: "true",
				Tags:          []string{"types"},
			},
			{
				QuestionID:    "q3",
				Type:          model.QuestionShortAnswer,
				CorrectAnswer: "goroutine",
				Points:        2,
				Tags:          []string{"concurrency"},
			},
		},
	}
}

func TestGradeAttemptAllCorrect(t *testing.T) {
	quiz := sampleQuiz()
	answers := []SubmittedAnswer{
		{QuestionID: "q1", Answer: model.ChoiceAnswer("B")},
		{QuestionID: "q2", Answer: model.BoolAnswer(true)},
		{QuestionID: "q3", Answer: model.TextAnswer("Goroutine ")}, // case and whitespace tolerant
	}

	graded, score := GradeAttempt(quiz, answers)

	if len(graded) != 3 {
		t.Fatalf("expected 3 graded answers, got %d", len(graded))
	}
	if score.Correct != 3 || score.Incorrect != 0 {
		t.Errorf("expected 3/0, got %d/%d", score.Correct, score.Incorrect)
	}
	if score.TotalPoints != 5 {
		t.Errorf("expected totalPoints 5, got %d", score.TotalPoints)
	}
	if score.Percentage != 100 {
		t.Errorf("expected 100%%, got %d", score.Percentage)
	}
}

func TestGradeAttemptPartial(t *testing.T) {
	quiz := sampleQuiz()
	answers := []SubmittedAnswer{
		{QuestionID: "q1", Answer: model.ChoiceAnswer("A")}, // wrong
		{QuestionID: "q2", Answer: model.BoolAnswer(true)},  // right, 1 point
		// q3 unanswered
	}

	graded, score := GradeAttempt(quiz, answers)

	if len(graded) != 2 {
		t.Fatalf("expected 2 graded answers (unanswered not recorded), got %d", len(graded))
	}
	if score.Correct != 1 || score.Incorrect != 2 {
		t.Errorf("expected 1 correct / 2 incorrect, got %d/%d", score.Correct, score.Incorrect)
	}
	// 1 of 5 points -> 20%
	if score.Percentage != 20 {
		t.Errorf("expected 20%%, got %d", score.Percentage)
	}
	for _, answer := range graded {
		if answer.QuestionID == "q1" && (answer.IsCorrect || answer.PointsEarned != 0) {
			t.Errorf("wrong answer must earn nothing, got %+v", answer)
		}
	}
}

func TestGradeAttemptEmptyQuiz(t *testing.T) {
	quiz := &model.Quiz{}

	graded, score := GradeAttempt(quiz, nil)

	if len(graded) != 0 {
		t.Errorf("expected no graded answers, got %d", len(graded))
	}
	if score.Percentage != 0 || score.TotalPoints != 0 {
		t.Errorf("expected zero score for empty quiz, got %+v", score)
	}
}

func TestGradeAttemptMCQTextFallback(t *testing.T) {
	quiz := &model.Quiz{
		Questions: model.QuestionList{
			{
				QuestionID:    "q1",
				Type:          model.QuestionMCQ,
				CorrectAnswer: "right",
				Options: []model.Option{
					{OptionLetter: "A", Text: "right", IsCorrect: true},
				},
			},
		},
	}

	_, score := GradeAttempt(quiz, []SubmittedAnswer{
		{QuestionID: "q1", Answer: model.TextAnswer("right")},
	})

	if score.Correct != 1 {
		t.Errorf("text answer matching the correct-answer text must pass, got %+v", score)
	}
}

func TestBuildFeedbackBuckets(t *testing.T) {
	quiz := sampleQuiz()
	graded := []model.AttemptAnswer{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q2", IsCorrect: false},
		{QuestionID: "q3", IsCorrect: true},
	}

	feedback := buildFeedback(quiz, graded, model.AttemptScore{Percentage: 60})

	if len(feedback.Strengths) != 2 {
		t.Errorf("expected 2 strength tags, got %v", feedback.Strengths)
	}
	if len(feedback.Weaknesses) != 1 || feedback.Weaknesses[0] != "types" {
		t.Errorf("expected [types] weaknesses, got %v", feedback.Weaknesses)
	}
	if len(feedback.Suggestions) == 0 {
		t.Error("expected a suggestion for a mid-range score")
	}
}

func TestAppendUniqueAndRemove(t *testing.T) {
	list := appendUnique(nil, "a")
	list = appendUnique(list, "b")
	list = appendUnique(list, "a")
	if len(list) != 2 {
		t.Errorf("expected deduplicated list, got %v", list)
	}

	list = remove(list, "a")
	if len(list) != 1 || list[0] != "b" {
		t.Errorf("expected [b], got %v", list)
	}
}
