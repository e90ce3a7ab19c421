package service

import (
	"time"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/security"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) UpdateProfile(userID uint, name string, profile model.Profile) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	user.Profile = profile

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdatePreferences(userID uint, prefs model.Preferences) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	user.Preferences = prefs

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddGoal appends a goal and returns its generated id.
func (s *UserService) AddGoal(userID uint, goal model.UserGoal) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	goal.GoalID = model.GenerateID()
	goal.CreatedAt = time.Now()
	if goal.Priority == "" {
		goal.Priority = model.PriorityMedium
	}
	if goal.Status == "" {
		goal.Status = model.GoalActive
	}
	user.Goals = append(user.Goals, goal)

	if err := s.UserRepo.Save(user); err != nil {
		return "", err
	}
	return goal.GoalID, nil
}

func (s *UserService) UpdateGoalStatus(userID uint, goalID string, status model.GoalStatus) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	for i := range user.Goals {
		if user.Goals[i].GoalID == goalID {
			user.Goals[i].Status = status
			return s.UserRepo.Save(user)
		}
	}
	return util.ErrGoalNotFound
}

// ChangePassword verifies the old password, then stages the new one for
// hashing on commit.
func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if !security.CheckPassword(oldPassword, user.Password) {
		return util.ErrInvalidCredentials
	}

	user.SetPassword(newPassword)
	return s.UserRepo.Save(user)
}

func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Profile.Avatar = url
	return s.UserRepo.Save(user)
}
