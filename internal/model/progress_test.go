package model

import (
	"testing"
	"time"
)

func attemptWithPercentage(quizID uint, n, percentage int) QuizAttempt {
	return QuizAttempt{
		QuizID:        quizID,
		AttemptNumber: n,
		Score:         AttemptScore{Percentage: percentage},
	}
}

func TestProgressRecalculate(t *testing.T) {
	progress := Progress{
		QuizAttempts: QuizAttemptList{
			attemptWithPercentage(1, 1, 80),
			attemptWithPercentage(1, 2, 90),
			attemptWithPercentage(2, 1, 100),
		},
	}

	progress.Recalculate(time.Now())

	if progress.Overall.TotalQuizzesTaken != 3 {
		t.Errorf("expected totalQuizzesTaken 3, got %d", progress.Overall.TotalQuizzesTaken)
	}
	if progress.Overall.AverageScore != 90 {
		t.Errorf("expected averageScore 90, got %d", progress.Overall.AverageScore)
	}
}

func TestProgressRecalculateRounding(t *testing.T) {
	progress := Progress{
		QuizAttempts: QuizAttemptList{
			attemptWithPercentage(1, 1, 70),
			attemptWithPercentage(1, 2, 75),
		},
	}

	progress.Recalculate(time.Now())

	// 72.5 rounds to 73
	if progress.Overall.AverageScore != 73 {
		t.Errorf("expected averageScore 73, got %d", progress.Overall.AverageScore)
	}
}

func TestProgressRecalculateNoAttemptsPreservesAverage(t *testing.T) {
	progress := Progress{
		Overall: OverallProgress{AverageScore: 85, TotalQuizzesTaken: 4},
	}

	progress.Recalculate(time.Now())

	if progress.Overall.TotalQuizzesTaken != 0 {
		t.Errorf("expected totalQuizzesTaken 0, got %d", progress.Overall.TotalQuizzesTaken)
	}
	if progress.Overall.AverageScore != 85 {
		t.Errorf("expected prior averageScore 85 preserved, got %d", progress.Overall.AverageScore)
	}
}

func TestProgressRecalculateLeavesTopicCounters(t *testing.T) {
	progress := Progress{
		QuizAttempts: QuizAttemptList{attemptWithPercentage(1, 1, 50)},
		Overall: OverallProgress{
			CompletedTopics:      3,
			TotalTopics:          10,
			CompletionPercentage: 30,
		},
	}

	progress.Recalculate(time.Now())

	if progress.Overall.CompletedTopics != 3 || progress.Overall.TotalTopics != 10 || progress.Overall.CompletionPercentage != 30 {
		t.Errorf("topic counters must not be touched by the roll-up, got %+v", progress.Overall)
	}
}

func TestProgressRecalculateIdempotent(t *testing.T) {
	progress := Progress{
		QuizAttempts: QuizAttemptList{attemptWithPercentage(1, 1, 60)},
	}

	first := time.Now()
	progress.Recalculate(first)
	snapshot := progress.Overall

	progress.Recalculate(first.Add(time.Second))

	if progress.Overall != snapshot {
		t.Errorf("derived fields changed on unchanged record: %+v vs %+v", progress.Overall, snapshot)
	}
	if !progress.UpdatedAt.After(first) {
		t.Errorf("expected updatedAt to advance, got %v", progress.UpdatedAt)
	}
}

func TestNextAttemptNumber(t *testing.T) {
	progress := Progress{
		QuizAttempts: QuizAttemptList{
			attemptWithPercentage(1, 1, 50),
			attemptWithPercentage(1, 2, 70),
			attemptWithPercentage(2, 1, 90),
		},
	}

	if n := progress.NextAttemptNumber(1); n != 3 {
		t.Errorf("expected next attempt 3 for quiz 1, got %d", n)
	}
	if n := progress.NextAttemptNumber(2); n != 2 {
		t.Errorf("expected next attempt 2 for quiz 2, got %d", n)
	}
	if n := progress.NextAttemptNumber(99); n != 1 {
		t.Errorf("expected next attempt 1 for fresh quiz, got %d", n)
	}
}

func TestStudyStreakTouch(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	var streak StudyStreak

	streak.Touch(day(0))
	if streak.Current != 1 || streak.Longest != 1 {
		t.Fatalf("expected 1/1 after first study day, got %d/%d", streak.Current, streak.Longest)
	}

	// Same day again is a no-op.
	streak.Touch(day(0))
	if streak.Current != 1 {
		t.Errorf("expected same-day touch to keep streak at 1, got %d", streak.Current)
	}

	streak.Touch(day(1))
	streak.Touch(day(2))
	if streak.Current != 3 || streak.Longest != 3 {
		t.Errorf("expected 3/3 after consecutive days, got %d/%d", streak.Current, streak.Longest)
	}

	// A gap resets the run but keeps the record.
	streak.Touch(day(5))
	if streak.Current != 1 || streak.Longest != 3 {
		t.Errorf("expected 1/3 after a gap, got %d/%d", streak.Current, streak.Longest)
	}
}

func TestRecordActivityMergesSameDay(t *testing.T) {
	at := time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)

	var analytics Analytics
	analytics.RecordActivity(at, 1, 300, 80)
	analytics.RecordActivity(at.Add(2*time.Hour), 1, 600, 90)

	if len(analytics.DailyActivity) != 1 {
		t.Fatalf("expected one merged daily entry, got %d", len(analytics.DailyActivity))
	}

	entry := analytics.DailyActivity[0]
	if entry.QuizzesTaken != 2 || entry.TimeSpent != 900 {
		t.Errorf("expected merged entry 2 quizzes / 900s, got %d/%d", entry.QuizzesTaken, entry.TimeSpent)
	}
	if entry.Score != 90 {
		t.Errorf("expected latest score 90, got %d", entry.Score)
	}

	analytics.RecordActivity(at.AddDate(0, 0, 1), 1, 100, 70)
	if len(analytics.DailyActivity) != 2 {
		t.Errorf("expected a second entry for the next day, got %d", len(analytics.DailyActivity))
	}
	if analytics.StudyStreak.Current != 2 {
		t.Errorf("expected streak 2 after consecutive days, got %d", analytics.StudyStreak.Current)
	}
}

func TestRecordActivityWeeklyRollup(t *testing.T) {
	// Friday and Saturday of ISO week 31, then Monday of week 32.
	friday := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	var analytics Analytics
	analytics.RecordActivity(friday, 1, 300, 80)
	analytics.RecordActivity(friday.AddDate(0, 0, 1), 2, 600, 90)

	if len(analytics.WeeklyProgress) != 1 {
		t.Fatalf("expected one weekly entry, got %d", len(analytics.WeeklyProgress))
	}

	entry := analytics.WeeklyProgress[0]
	if entry.Week != "2025-W31" {
		t.Errorf("expected week key 2025-W31, got %q", entry.Week)
	}
	if entry.ProgressMade != 3 {
		t.Errorf("expected 3 quizzes rolled up, got %d", entry.ProgressMade)
	}
	if entry.AverageScore != 85 {
		t.Errorf("expected weekly averageScore 85, got %d", entry.AverageScore)
	}

	analytics.RecordActivity(friday.AddDate(0, 0, 3), 1, 100, 70)
	if len(analytics.WeeklyProgress) != 2 {
		t.Fatalf("expected a second entry for the next week, got %d", len(analytics.WeeklyProgress))
	}
	if analytics.WeeklyProgress[1].Week != "2025-W32" {
		t.Errorf("expected week key 2025-W32, got %q", analytics.WeeklyProgress[1].Week)
	}
}
