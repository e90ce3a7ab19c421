package model

import (
	"database/sql/driver"
	"math"
	"time"
)

type RoadmapStatus string

const (
	RoadmapActive    RoadmapStatus = "active"
	RoadmapCompleted RoadmapStatus = "completed"
	RoadmapPaused    RoadmapStatus = "paused"
)

type GeneratedBy string

const (
	GeneratedByAI    GeneratedBy = "ai"
	GeneratedByAdmin GeneratedBy = "admin"
	GeneratedByUser  GeneratedBy = "user"
)

type ResourceType string

const (
	ResourceArticle  ResourceType = "article"
	ResourceVideo    ResourceType = "video"
	ResourceBook     ResourceType = "book"
	ResourceCourse   ResourceType = "course"
	ResourcePractice ResourceType = "practice"
	ResourceProject  ResourceType = "project"
)

// Resource is a single learning material attached to a topic. URLs are
// external; nothing in this service fetches or processes them.
type Resource struct {
	Type        ResourceType `json:"type"`
	Title       string       `json:"title"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	IsPremium   bool         `json:"isPremium"`
}

type Topic struct {
	TopicID       string     `json:"topicId"`
	TopicNumber   int        `json:"topicNumber"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedTime int        `json:"estimatedTime"` // hours
	Resources     []Resource `json:"resources"`
	Skills        []string   `json:"skills"`
	Prerequisites []string   `json:"prerequisites"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type Phase struct {
	PhaseNumber int     `json:"phaseNumber"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // days
	Topics      []Topic `json:"topics"`
}

type PhaseList []Phase

// RoadmapProgress is derived from the phase tree on every commit and is
// never hand-set by callers.
type RoadmapProgress struct {
	CompletedTopics      int `gorm:"default:0" json:"completedTopics"`
	TotalTopics          int `gorm:"default:0" json:"totalTopics"`
	CompletionPercentage int `gorm:"default:0" json:"completionPercentage"`
}

// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"userId"`
	GoalID string `gorm:"size:36;not null" json:"goalId"`

	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	Category      string     `gorm:"size:100;not null" json:"category"`
	TotalDuration int        `gorm:"not null" json:"totalDuration"` // days
	Difficulty    SkillLevel `gorm:"type:enum('beginner','intermediate','advanced');not null" json:"difficulty"`

	Phases PhaseList `gorm:"type:json" json:"phases"`

	GeneratedBy GeneratedBy   `gorm:"type:enum('ai','admin','user');default:'ai'" json:"generatedBy"`
	AIPrompt    string        `gorm:"type:text" json:"aiPrompt,omitempty"`
	Status      RoadmapStatus `gorm:"type:enum('active','completed','paused');default:'active'" json:"status"`

	Progress RoadmapProgress `gorm:"embedded;embeddedPrefix:progress_" json:"progress"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// Recalculate recomputes the progress summary from the phase tree and
// bumps UpdatedAt. Total over any well-formed phase list, including an
// empty one; the record is mutated in place.
func (r *Roadmap) Recalculate(now time.Time) {
	total := 0
	completed := 0
	for _, phase := range r.Phases {
		total += len(phase.Topics)
		for _, topic := range phase.Topics {
			if topic.IsCompleted {
				completed++
			}
		}
	}

	r.Progress.TotalTopics = total
	r.Progress.CompletedTopics = completed
	if total > 0 {
		r.Progress.CompletionPercentage = int(math.Round(float64(completed) / float64(total) * 100))
	} else {
		r.Progress.CompletionPercentage = 0
	}
	r.UpdatedAt = now
}

// EnsureTopicIDs mints ids for topics that arrived without one. Topics
// that already carry an id keep it, so quiz and progress references
// stay stable across edits.
func (r *Roadmap) EnsureTopicIDs() {
	for i := range r.Phases {
		for j := range r.Phases[i].Topics {
			if r.Phases[i].Topics[j].TopicID == "" {
				r.Phases[i].Topics[j].TopicID = GenerateID()
			}
		}
	}
}

// FindTopic returns the phase/topic indices for a topic id, or ok=false.
func (r *Roadmap) FindTopic(topicID string) (phaseIdx, topicIdx int, ok bool) {
	for i, phase := range r.Phases {
		for j, topic := range phase.Topics {
			if topic.TopicID == topicID {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (p *PhaseList) Scan(src interface{}) error { return jsonScan(p, src) }
func (p PhaseList) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return jsonValue(p)
}
