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

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	RoadmapRepo  *repository.RoadmapRepository
	ProgressRepo *repository.ProgressRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, roadmapRepo *repository.RoadmapRepository, progressRepo *repository.ProgressRepository) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		RoadmapRepo:  roadmapRepo,
		ProgressRepo: progressRepo,
	}
}

// Create persists a quiz after minting question ids and checking the
// roadmap/topic references.
func (s *QuizService) Create(quiz *model.Quiz) error {
	roadmap, err := s.RoadmapRepo.FindByID(quiz.RoadmapID)
	if err != nil {
		return util.ErrRoadmapNotFound
	}
	if roadmap.UserID != quiz.UserID {
		return util.ErrPermissionDenied
	}
	if _, _, ok := roadmap.FindTopic(quiz.TopicID); !ok {
		return util.ErrTopicNotFound
	}

	for i := range quiz.Questions {
		if quiz.Questions[i].QuestionID == "" {
			quiz.Questions[i].QuestionID = model.GenerateID()
		}
		if quiz.Questions[i].Difficulty == "" {
			quiz.Questions[i].Difficulty = model.DifficultyMedium
		}
	}

	return s.QuizRepo.Create(quiz)
}

func (s *QuizService) Get(userID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}
	if quiz.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return quiz, nil
}

func (s *QuizService) ListByRoadmap(userID, roadmapID uint) ([]model.Quiz, error) {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		return nil, util.ErrRoadmapNotFound
	}
	if roadmap.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return s.QuizRepo.FindByRoadmap(roadmapID)
}

// ListByTopic narrows a roadmap's quizzes to one topic.
func (s *QuizService) ListByTopic(userID, roadmapID uint, topicID string) ([]model.Quiz, error) {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		return nil, util.ErrRoadmapNotFound
	}
	if roadmap.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if _, _, ok := roadmap.FindTopic(topicID); !ok {
		return nil, util.ErrTopicNotFound
	}
	return s.QuizRepo.FindByTopic(roadmapID, topicID)
}

func (s *QuizService) SetStatus(userID, quizID uint, status model.QuizStatus) error {
	quiz, err := s.Get(userID, quizID)
	if err != nil {
		return err
	}
	quiz.Status = status
	return s.QuizRepo.Save(quiz)
}

func (s *QuizService) Delete(userID, quizID uint) error {
	if _, err := s.Get(userID, quizID); err != nil {
		return err
	}
	return s.QuizRepo.Delete(quizID)
}

// Submit grades a submission, appends the attempt to the progress
// record for the quiz's roadmap, and folds the result into analytics.
func (s *QuizService) Submit(userID, quizID uint, answers []SubmittedAnswer, timeSpent int) (*model.QuizAttempt, error) {
	quiz, err := s.Get(userID, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizActive {
		return nil, util.ErrQuizInactive
	}

	graded, score := GradeAttempt(quiz, answers)

	now := time.Now()
	progress, err := s.getOrCreateProgress(userID, quiz.RoadmapID)
	if err != nil {
		return nil, err
	}

	attempt := model.QuizAttempt{
		QuizID:        quiz.ID,
		AttemptNumber: progress.NextAttemptNumber(quiz.ID),
		Answers:       graded,
		Score:         score,
		TimeSpent:     timeSpent,
		CompletedAt:   now,
		Feedback:      buildFeedback(quiz, graded, score),
	}

	progress.QuizAttempts = append(progress.QuizAttempts, attempt)
	progress.Analytics.RecordActivity(now, 1, timeSpent, score.Percentage)
	s.updateTopicStrength(progress, quiz, score)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	monitoring.QuizSubmissions.Inc()
	return &attempt, nil
}

// updateTopicStrength moves the quiz category between the strong and
// weak tag lists based on the attempt outcome.
func (s *QuizService) updateTopicStrength(progress *model.Progress, quiz *model.Quiz, score model.AttemptScore) {
	if quiz.Category == "" {
		return
	}

	switch {
	case score.Percentage >= 80:
		progress.Analytics.StrongTopics = appendUnique(progress.Analytics.StrongTopics, quiz.Category)
		progress.Analytics.WeakTopics = remove(progress.Analytics.WeakTopics, quiz.Category)
	case score.Percentage < 50:
		progress.Analytics.WeakTopics = appendUnique(progress.Analytics.WeakTopics, quiz.Category)
		progress.Analytics.StrongTopics = remove(progress.Analytics.StrongTopics, quiz.Category)
	}
}

func (s *QuizService) getOrCreateProgress(userID, roadmapID uint) (*model.Progress, error) {
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

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func remove(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
