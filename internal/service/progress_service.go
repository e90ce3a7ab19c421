package service

import (
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	RoadmapRepo  *repository.RoadmapRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, roadmapRepo *repository.RoadmapRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		RoadmapRepo:  roadmapRepo,
	}
}

func (s *ProgressService) GetByRoadmap(userID, roadmapID uint) (*model.Progress, error) {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		return nil, util.ErrRoadmapNotFound
	}
	if roadmap.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	progress, err := s.ProgressRepo.FindByUserAndRoadmap(userID, roadmapID)
	if err != nil {
		return nil, util.ErrProgressNotFound
	}
	return progress, nil
}

func (s *ProgressService) ListByUser(userID uint) ([]model.Progress, error) {
	return s.ProgressRepo.FindByUser(userID)
}

func (s *ProgressService) GetAnalytics(userID, roadmapID uint) (*model.Analytics, error) {
	progress, err := s.GetByRoadmap(userID, roadmapID)
	if err != nil {
		return nil, err
	}
	return &progress.Analytics, nil
}
