package controller

import (
	"errors"
	"fmt"
	"path/filepath"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

type UpdateProfileRequest struct {
	Name    string        `json:"name" binding:"omitempty,max=50"`
	Profile model.Profile `json:"profile"`
}

// UpdateProfile godoc
// @Summary Update name and profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProfileRequest true "profile payload"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.Profile)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdatePreferences godoc
// @Summary Update study preferences
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Preferences true "preferences payload"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var prefs model.Preferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := prefs.Validate(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdatePreferences(claims.UserID, prefs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// AddGoal godoc
// @Summary Add a learning goal
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UserGoal true "goal payload"
// @Success 201 {object} util.Response
// @Router /api/users/goals [post]
func (c *UserController) AddGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var goal model.UserGoal
	if err := ctx.ShouldBindJSON(&goal); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if goal.Title == "" || goal.Category == "" {
		util.BadRequest(ctx, "title and category are required")
		return
	}

	goalID, err := c.UserService.AddGoal(claims.UserID, goal)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"goalId": goalID})
}

type UpdateGoalStatusRequest struct {
	Status model.GoalStatus `json:"status" binding:"required,oneof=active completed paused"`
}

// UpdateGoalStatus godoc
// @Summary Update a goal's status
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goalId path string true "goal id"
// @Param body body UpdateGoalStatusRequest true "status payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/goals/{goalId} [put]
func (c *UserController) UpdateGoalStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req UpdateGoalStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.UserService.UpdateGoalStatus(claims.UserID, ctx.Param("goalId"), req.Status)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ChangePasswordRequest true "password payload"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/users/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.UserService.ChangePassword(claims.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "old password is incorrect")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// ListUsers godoc
// @Summary List all accounts (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d%s", claims.UserID, filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Provider.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.SetAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": url})
}
