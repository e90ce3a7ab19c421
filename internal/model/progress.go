package model

import (
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

type AttemptAnswer struct {
	QuestionID   string      `json:"questionId"`
	UserAnswer   AnswerValue `json:"userAnswer"`
	IsCorrect    bool        `json:"isCorrect"`
	PointsEarned int         `json:"pointsEarned"`
	TimeSpent    int         `json:"timeSpent,omitempty"` // seconds
}

type AttemptScore struct {
	Correct        int `json:"correct"`
	Incorrect      int `json:"incorrect"`
	TotalQuestions int `json:"totalQuestions"`
	TotalPoints    int `json:"totalPoints"`
	Percentage     int `json:"percentage"`
}

type AttemptFeedback struct {
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	NextSteps   []string `json:"nextSteps,omitempty"`
}

type QuizAttempt struct {
	QuizID        uint            `json:"quizId"`
	AttemptNumber int             `json:"attemptNumber"`
	Answers       []AttemptAnswer `json:"answers"`
	Score         AttemptScore    `json:"score"`
	TimeSpent     int             `json:"timeSpent"` // seconds
	CompletedAt   time.Time       `json:"completedAt"`
	Feedback      AttemptFeedback `json:"feedback"`
}

type QuizAttemptList []QuizAttempt

type TopicCompletion struct {
	TopicID     string    `json:"topicId"`
	CompletedAt time.Time `json:"completedAt"`
	Score       int       `json:"score,omitempty"`
	TimeSpent   int       `json:"timeSpent,omitempty"`
}

type TopicCompletionList []TopicCompletion

// OverallProgress mixes two maintenance regimes: TotalQuizzesTaken and
// AverageScore are recomputed by Recalculate on every commit, while the
// topic counters are written by the topic-completion call site only.
type OverallProgress struct {
	CompletedTopics      int `gorm:"default:0" json:"completedTopics"`
	TotalTopics          int `gorm:"default:0" json:"totalTopics"`
	CompletionPercentage int `gorm:"default:0" json:"completionPercentage"`
	TotalQuizzesTaken    int `gorm:"default:0" json:"totalQuizzesTaken"`
	AverageScore         int `gorm:"default:0" json:"averageScore"`
}

type DailyActivity struct {
	Date         time.Time `json:"date"`
	QuizzesTaken int       `json:"quizzesTaken"`
	TimeSpent    int       `json:"timeSpent"`
	Score        int       `json:"score"`
}

type WeeklyProgress struct {
	Week         string `json:"week"` // e.g. "2025-W31"
	ProgressMade int    `json:"progressMade"`
	AverageScore int    `json:"averageScore"`
}

type StudyStreak struct {
	Current       int        `json:"current"`
	Longest       int        `json:"longest"`
	LastStudyDate *time.Time `json:"lastStudyDate,omitempty"`
}

type Analytics struct {
	DailyActivity  []DailyActivity  `json:"dailyActivity"`
	WeeklyProgress []WeeklyProgress `json:"weeklyProgress"`
	StrongTopics   []string         `json:"strongTopics"`
	WeakTopics     []string         `json:"weakTopics"`
	StudyStreak    StudyStreak      `json:"studyStreak"`
}

// swagger:model Progress
type Progress struct {
	BaseModel
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_roadmap" json:"userId"`
	RoadmapID uint `gorm:"not null;uniqueIndex:idx_user_roadmap" json:"roadmapId"`

	QuizAttempts    QuizAttemptList     `gorm:"type:json" json:"quizAttempts"`
	TopicsCompleted TopicCompletionList `gorm:"type:json" json:"topicsCompleted"`

	Overall   OverallProgress `gorm:"embedded;embeddedPrefix:overall_" json:"overallProgress"`
	Analytics Analytics       `gorm:"type:json" json:"analytics"`
}

func (Progress) TableName() string {
	return "progress"
}

// Recalculate recomputes the two quiz-derived summary fields and bumps
// UpdatedAt. With zero attempts AverageScore keeps whatever value it
// already holds; a caller cannot tell a preserved prior average from the
// zero default, which mirrors the topic counters being out of scope here.
func (p *Progress) Recalculate(now time.Time) {
	p.Overall.TotalQuizzesTaken = len(p.QuizAttempts)

	if len(p.QuizAttempts) > 0 {
		sum := 0
		for _, attempt := range p.QuizAttempts {
			sum += attempt.Score.Percentage
		}
		p.Overall.AverageScore = int(math.Round(float64(sum) / float64(len(p.QuizAttempts))))
	}

	p.UpdatedAt = now
}

// NextAttemptNumber returns the attempt number for a new attempt at the
// given quiz: one past the highest recorded so far.
func (p *Progress) NextAttemptNumber(quizID uint) int {
	highest := 0
	for _, attempt := range p.QuizAttempts {
		if attempt.QuizID == quizID && attempt.AttemptNumber > highest {
			highest = attempt.AttemptNumber
		}
	}
	return highest + 1
}

// RecordActivity folds one study event into the daily activity log,
// keyed by calendar day, and advances the study streak.
func (a *Analytics) RecordActivity(at time.Time, quizzesTaken, timeSpent, score int) {
	day := at.Truncate(24 * time.Hour)

	found := false
	for i := range a.DailyActivity {
		if a.DailyActivity[i].Date.Equal(day) {
			a.DailyActivity[i].QuizzesTaken += quizzesTaken
			a.DailyActivity[i].TimeSpent += timeSpent
			if score > 0 {
				a.DailyActivity[i].Score = score
			}
			found = true
			break
		}
	}
	if !found {
		a.DailyActivity = append(a.DailyActivity, DailyActivity{
			Date:         day,
			QuizzesTaken: quizzesTaken,
			TimeSpent:    timeSpent,
			Score:        score,
		})
	}

	a.StudyStreak.Touch(day)
	a.rollUpWeek(day)
}

// rollUpWeek rebuilds the weekly entry for the given day's ISO week from
// the daily activity log.
func (a *Analytics) rollUpWeek(day time.Time) {
	year, week := day.ISOWeek()
	key := fmt.Sprintf("%d-W%02d", year, week)

	made, sum, scored := 0, 0, 0
	for _, d := range a.DailyActivity {
		if y, w := d.Date.ISOWeek(); y == year && w == week {
			made += d.QuizzesTaken
			if d.Score > 0 {
				sum += d.Score
				scored++
			}
		}
	}

	avg := 0
	if scored > 0 {
		avg = int(math.Round(float64(sum) / float64(scored)))
	}

	for i := range a.WeeklyProgress {
		if a.WeeklyProgress[i].Week == key {
			a.WeeklyProgress[i].ProgressMade = made
			a.WeeklyProgress[i].AverageScore = avg
			return
		}
	}
	a.WeeklyProgress = append(a.WeeklyProgress, WeeklyProgress{
		Week:         key,
		ProgressMade: made,
		AverageScore: avg,
	})
}

// Touch advances the streak for a study event on the given day. Same-day
// events are idempotent; a one-day gap extends the run, anything longer
// restarts it.
func (s *StudyStreak) Touch(day time.Time) {
	day = day.Truncate(24 * time.Hour)

	switch {
	case s.LastStudyDate == nil:
		s.Current = 1
	case s.LastStudyDate.Equal(day):
		// already counted today
	case day.Sub(*s.LastStudyDate) == 24*time.Hour:
		s.Current++
	default:
		s.Current = 1
	}

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastStudyDate = &day
}

func (q *QuizAttemptList) Scan(src interface{}) error { return jsonScan(q, src) }
func (q QuizAttemptList) Value() (driver.Value, error) {
	if q == nil {
		return []byte("[]"), nil
	}
	return jsonValue(q)
}

func (t *TopicCompletionList) Scan(src interface{}) error { return jsonScan(t, src) }
func (t TopicCompletionList) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return jsonValue(t)
}

func (a *Analytics) Scan(src interface{}) error  { return jsonScan(a, src) }
func (a Analytics) Value() (driver.Value, error) { return jsonValue(a) }
