package repository

import (
	"time"

	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	progress.Recalculate(time.Now())
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Save(progress *model.Progress) error {
	progress.Recalculate(time.Now())
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) FindByID(id uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.First(&progress, id).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUserAndRoadmap(userID, roadmapID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.Progress, error) {
	var records []model.Progress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}
