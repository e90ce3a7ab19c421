package model

import (
	"database/sql/driver"
	"time"
)

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionShortAnswer QuestionType = "short_answer"
	QuestionCoding      QuestionType = "coding"
	QuestionTrueFalse   QuestionType = "true_false"
	QuestionFillBlank   QuestionType = "fill_blank"
)

type QuizStatus string

const (
	QuizActive   QuizStatus = "active"
	QuizInactive QuizStatus = "inactive"
)

type Option struct {
	OptionLetter string `json:"optionLetter"` // A-E
	Text         string `json:"text"`
	IsCorrect    bool   `json:"isCorrect"`
}

type Question struct {
	QuestionID     string       `json:"questionId"`
	QuestionNumber int          `json:"questionNumber"`
	Type           QuestionType `json:"type"`
	Question       string       `json:"question"`
	Options        []Option     `json:"options,omitempty"`
	CorrectAnswer  string       `json:"correctAnswer"`
	Explanation    string       `json:"explanation"`
	Points         int          `json:"points"`
	Tags           []string     `json:"tags,omitempty"`
	Difficulty     Difficulty   `json:"difficulty"`
}

// PointValue treats an unset point value as the default of 1.
func (q Question) PointValue() int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

type QuestionList []Question

// swagger:model Quiz
type Quiz struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"userId"`
	RoadmapID uint   `gorm:"index;not null" json:"roadmapId"`
	TopicID   string `gorm:"size:36;not null" json:"topicId"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:100;not null" json:"category"`
	Difficulty  Difficulty `gorm:"type:enum('easy','medium','hard');not null" json:"difficulty"`
	TimeLimit   int        `gorm:"default:30" json:"timeLimit"` // minutes

	Questions QuestionList `gorm:"type:json" json:"questions"`

	// Derived; recomputed on every commit, never independently settable.
	TotalQuestions int `gorm:"default:0" json:"totalQuestions"`
	TotalPoints    int `gorm:"default:0" json:"totalPoints"`

	GeneratedBy GeneratedBy `gorm:"type:enum('ai','admin');default:'ai'" json:"generatedBy"`
	AIPrompt    string      `gorm:"type:text" json:"aiPrompt,omitempty"`
	Status      QuizStatus  `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Recalculate sets the question count and point total from the question
// list and bumps UpdatedAt. An empty list yields 0/0.
func (q *Quiz) Recalculate(now time.Time) {
	q.TotalQuestions = len(q.Questions)
	points := 0
	for _, question := range q.Questions {
		points += question.PointValue()
	}
	q.TotalPoints = points
	q.UpdatedAt = now
}

// FindQuestion looks a question up by its opaque id.
func (q *Quiz) FindQuestion(questionID string) (Question, bool) {
	for _, question := range q.Questions {
		if question.QuestionID == questionID {
			return question, true
		}
	}
	return Question{}, false
}

func (q *QuestionList) Scan(src interface{}) error { return jsonScan(q, src) }
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return []byte("[]"), nil
	}
	return jsonValue(q)
}
