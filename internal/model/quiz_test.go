package model

import (
	"testing"
	"time"
)

func TestQuizRecalculate(t *testing.T) {
	quiz := Quiz{
		Questions: QuestionList{
			{QuestionNumber: 1, Points: 1},
			{QuestionNumber: 2, Points: 2},
			{QuestionNumber: 3, Points: 1},
		},
	}

	quiz.Recalculate(time.Now())

	if quiz.TotalQuestions != 3 {
		t.Errorf("expected totalQuestions 3, got %d", quiz.TotalQuestions)
	}
	if quiz.TotalPoints != 4 {
		t.Errorf("expected totalPoints 4, got %d", quiz.TotalPoints)
	}
}

func TestQuizRecalculateDefaultPoints(t *testing.T) {
	quiz := Quiz{
		Questions: QuestionList{
			{QuestionNumber: 1}, // unset points count as 1
			{QuestionNumber: 2, Points: 3},
		},
	}

	quiz.Recalculate(time.Now())

	if quiz.TotalPoints != 4 {
		t.Errorf("expected totalPoints 4 with default point value, got %d", quiz.TotalPoints)
	}
}

func TestQuizRecalculateEmpty(t *testing.T) {
	quiz := Quiz{TotalQuestions: 7, TotalPoints: 12}

	quiz.Recalculate(time.Now())

	if quiz.TotalQuestions != 0 || quiz.TotalPoints != 0 {
		t.Errorf("expected 0/0 for empty question list, got %d/%d", quiz.TotalQuestions, quiz.TotalPoints)
	}
}

func TestQuizRecalculateIdempotent(t *testing.T) {
	quiz := Quiz{Questions: QuestionList{{Points: 2}}}

	first := time.Now()
	quiz.Recalculate(first)
	questions, points := quiz.TotalQuestions, quiz.TotalPoints

	quiz.Recalculate(first.Add(time.Second))

	if quiz.TotalQuestions != questions || quiz.TotalPoints != points {
		t.Error("derived fields changed on unchanged record")
	}
	if !quiz.UpdatedAt.After(first) {
		t.Errorf("expected updatedAt to advance, got %v", quiz.UpdatedAt)
	}
}

func TestQuizFindQuestion(t *testing.T) {
	quiz := Quiz{Questions: QuestionList{{QuestionID: "q1"}, {QuestionID: "q2"}}}

	if q, ok := quiz.FindQuestion("q2"); !ok || q.QuestionID != "q2" {
		t.Errorf("expected to find q2, got (%+v, %v)", q, ok)
	}
	if _, ok := quiz.FindQuestion("nope"); ok {
		t.Error("expected lookup miss for unknown question id")
	}
}
