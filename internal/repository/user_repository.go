package repository

import (
	"strings"
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/security"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// hashIfChanged is the pre-commit credential hook: a staged plaintext
// password is replaced with its hash exactly once, and an untouched
// password field is left bit-for-bit as stored.
func hashIfChanged(user *model.User) error {
	if !user.PasswordChanged {
		return nil
	}
	hashed, err := security.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.PasswordChanged = false
	return nil
}

func (r *UserRepository) Create(user *model.User) error {
	if err := hashIfChanged(user); err != nil {
		return err
	}
	user.Email = strings.ToLower(user.Email)
	user.UpdatedAt = time.Now()
	return r.DB.Create(user).Error
}

func (r *UserRepository) Save(user *model.User) error {
	if err := hashIfChanged(user); err != nil {
		return err
	}
	user.UpdatedAt = time.Now()
	return r.DB.Save(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}
