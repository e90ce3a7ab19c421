package repository

import (
	"time"

	"skillpath_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	quiz.Recalculate(time.Now())
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) Save(quiz *model.Quiz) error {
	quiz.Recalculate(time.Now())
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByRoadmap(roadmapID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("roadmap_id = ?", roadmapID).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByTopic(roadmapID uint, topicID string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("roadmap_id = ? AND topic_id = ?", roadmapID, topicID).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}
