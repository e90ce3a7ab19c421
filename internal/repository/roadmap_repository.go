package repository

import (
	"time"

	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// Create and Save run the progress roll-up before the write; derived
// fields handed in by the caller are always overwritten.
func (r *RoadmapRepository) Create(roadmap *model.Roadmap) error {
	roadmap.Recalculate(time.Now())
	return r.DB.Create(roadmap).Error
}

func (r *RoadmapRepository) Save(roadmap *model.Roadmap) error {
	roadmap.Recalculate(time.Now())
	return r.DB.Save(roadmap).Error
}

func (r *RoadmapRepository) FindByID(id uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.First(&roadmap, id).Error
	return &roadmap, err
}

func (r *RoadmapRepository) FindByUser(userID uint) ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Roadmap{}, id).Error
}
