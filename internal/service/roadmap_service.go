package service

import (
	"errors"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type RoadmapService struct {
	RoadmapRepo  *repository.RoadmapRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository, progressRepo *repository.ProgressRepository, userRepo *repository.UserRepository) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo:  roadmapRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
	}
}

// Create persists a roadmap after minting ids for its topics and
// checking the goal reference against the owner's goal list.
func (s *RoadmapService) Create(roadmap *model.Roadmap) error {
	user, err := s.UserRepo.FindByID(roadmap.UserID)
	if err != nil {
		return util.ErrUserNotFound
	}

	goalKnown := false
	for _, goal := range user.Goals {
		if goal.GoalID == roadmap.GoalID {
			goalKnown = true
			break
		}
	}
	if !goalKnown {
		return util.ErrGoalNotFound
	}

	roadmap.EnsureTopicIDs()

	return s.RoadmapRepo.Create(roadmap)
}

func (s *RoadmapService) Get(userID, roadmapID uint) (*model.Roadmap, error) {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		return nil, util.ErrRoadmapNotFound
	}
	if roadmap.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return roadmap, nil
}

func (s *RoadmapService) ListByUser(userID uint) ([]model.Roadmap, error) {
	return s.RoadmapRepo.FindByUser(userID)
}

func (s *RoadmapService) Update(userID uint, roadmap *model.Roadmap) error {
	existing, err := s.Get(userID, roadmap.ID)
	if err != nil {
		return err
	}
	roadmap.UserID = existing.UserID
	roadmap.CreatedAt = existing.CreatedAt
	roadmap.EnsureTopicIDs()
	if roadmap.Status == "" {
		roadmap.Status = existing.Status
	}
	if roadmap.GeneratedBy == "" {
		roadmap.GeneratedBy = existing.GeneratedBy
	}
	return s.RoadmapRepo.Save(roadmap)
}

func (s *RoadmapService) UpdateStatus(userID, roadmapID uint, status model.RoadmapStatus) error {
	roadmap, err := s.Get(userID, roadmapID)
	if err != nil {
		return err
	}
	roadmap.Status = status
	return s.RoadmapRepo.Save(roadmap)
}

func (s *RoadmapService) Delete(userID, roadmapID uint) error {
	if _, err := s.Get(userID, roadmapID); err != nil {
		return err
	}
	return s.RoadmapRepo.Delete(roadmapID)
}

// CompleteTopic marks a topic done on the roadmap, then mirrors the
// completion into the progress record: topicsCompleted, the overall
// topic counters (which the progress roll-up does not maintain), and
// the activity log.
func (s *RoadmapService) CompleteTopic(userID, roadmapID uint, topicID string, score, timeSpent int) (*model.Roadmap, error) {
	roadmap, err := s.Get(userID, roadmapID)
	if err != nil {
		return nil, err
	}

	phaseIdx, topicIdx, ok := roadmap.FindTopic(topicID)
	if !ok {
		return nil, util.ErrTopicNotFound
	}

	now := time.Now()
	topic := &roadmap.Phases[phaseIdx].Topics[topicIdx]
	if !topic.IsCompleted {
		topic.IsCompleted = true
		topic.CompletedAt = &now
	}

	if err := s.RoadmapRepo.Save(roadmap); err != nil {
		return nil, err
	}

	progress, err := s.getOrCreateProgress(userID, roadmapID)
	if err != nil {
		return nil, err
	}

	alreadyRecorded := false
	for _, completed := range progress.TopicsCompleted {
		if completed.TopicID == topicID {
			alreadyRecorded = true
			break
		}
	}
	if !alreadyRecorded {
		progress.TopicsCompleted = append(progress.TopicsCompleted, model.TopicCompletion{
			TopicID:     topicID,
			CompletedAt: now,
			Score:       score,
			TimeSpent:   timeSpent,
		})
	}

	// Topic counters are maintained here, not by the roll-up.
	progress.Overall.CompletedTopics = roadmap.Progress.CompletedTopics
	progress.Overall.TotalTopics = roadmap.Progress.TotalTopics
	progress.Overall.CompletionPercentage = roadmap.Progress.CompletionPercentage

	progress.Analytics.RecordActivity(now, 0, timeSpent, score)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	monitoring.TopicCompletions.Inc()
	return roadmap, nil
}

func (s *RoadmapService) getOrCreateProgress(userID, roadmapID uint) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByUserAndRoadmap(userID, roadmapID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = &model.Progress{
		UserID:    userID,
		RoadmapID: roadmapID,
	}
	if err := s.ProgressRepo.Create(progress); err != nil {
		return nil, err
	}
	return progress, nil
}
