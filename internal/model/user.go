package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

// Profile carries the free-form account fields.
type Profile struct {
	Avatar       string     `json:"avatar"`
	Phone        string     `json:"phone"`
	Bio          string     `json:"bio"`
	CurrentLevel SkillLevel `json:"currentLevel"`
}

type NotificationPrefs struct {
	Email     bool `json:"email"`
	Reminders bool `json:"reminders"`
}

type Preferences struct {
	StudyDays        []string          `json:"studyDays"`
	StudyHoursPerDay int               `json:"studyHoursPerDay"`
	DifficultyLevel  Difficulty        `json:"difficultyLevel"`
	Notifications    NotificationPrefs `json:"notifications"`
}

// UserGoal is an embedded learning goal. GoalID is the opaque key
// roadmaps reference back through.
type UserGoal struct {
	GoalID     string       `json:"goalId"`
	Title      string       `json:"title"`
	Category   string       `json:"category"`
	TargetDate *time.Time   `json:"targetDate,omitempty"`
	Priority   GoalPriority `json:"priority"`
	Status     GoalStatus   `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type GoalList []UserGoal

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('user','admin');default:'user'" json:"role"`

	Profile     Profile     `gorm:"type:json" json:"profile"`
	Goals       GoalList    `gorm:"type:json" json:"goals"`
	Preferences Preferences `gorm:"type:json" json:"preferences"`

	IsActive  bool      `gorm:"default:true" json:"isActive"`
	LastLogin time.Time `json:"lastLogin"`

	// PasswordChanged marks the Password field as holding plaintext
	// that must be hashed before the next commit. Never persisted;
	// set only by SetPassword.
	PasswordChanged bool `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword stages a new plaintext password for hashing on commit.
// Resaving a record without calling this leaves the stored hash untouched.
func (u *User) SetPassword(plaintext string) {
	u.Password = plaintext
	u.PasswordChanged = true
}

var studyDayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// Validate enforces the account schema ranges: 1-12 study hours and
// weekday names only in studyDays.
func (p Preferences) Validate() error {
	if p.StudyHoursPerDay < 1 || p.StudyHoursPerDay > 12 {
		return fmt.Errorf("studyHoursPerDay must be between 1 and 12")
	}
	for _, day := range p.StudyDays {
		if !studyDayNames[strings.ToLower(day)] {
			return fmt.Errorf("invalid study day %q", day)
		}
	}
	return nil
}

func DefaultPreferences() Preferences {
	return Preferences{
		StudyHoursPerDay: 2,
		DifficultyLevel:  DifficultyMedium,
		Notifications:    NotificationPrefs{Email: true, Reminders: true},
	}
}

func (p *Profile) Scan(src interface{}) error      { return jsonScan(p, src) }
func (p Profile) Value() (driver.Value, error)     { return jsonValue(p) }
func (p *Preferences) Scan(src interface{}) error  { return jsonScan(p, src) }
func (p Preferences) Value() (driver.Value, error) { return jsonValue(p) }
func (g *GoalList) Scan(src interface{}) error     { return jsonScan(g, src) }
func (g GoalList) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return jsonValue(g)
}
