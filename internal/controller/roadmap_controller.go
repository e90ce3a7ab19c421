package controller

import (
	"errors"
	"strconv"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

type CreateRoadmapRequest struct {
	GoalID        string            `json:"goalId" binding:"required"`
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	Category      string            `json:"category" binding:"required"`
	TotalDuration int               `json:"totalDuration" binding:"required,min=1"`
	Difficulty    model.SkillLevel  `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Phases        model.PhaseList   `json:"phases"`
	GeneratedBy   model.GeneratedBy `json:"generatedBy" binding:"omitempty,oneof=ai admin user"`
	AIPrompt      string            `json:"aiPrompt"`
}

// Create godoc
// @Summary Create a roadmap
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateRoadmapRequest true "roadmap payload"
// @Success 201 {object} util.Response{data=model.Roadmap}
// @Failure 400 {object} util.Response
// @Router /api/roadmaps [post]
func (c *RoadmapController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap := &model.Roadmap{
		UserID:        claims.UserID,
		GoalID:        req.GoalID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		TotalDuration: req.TotalDuration,
		Difficulty:    req.Difficulty,
		Phases:        req.Phases,
		GeneratedBy:   req.GeneratedBy,
		AIPrompt:      req.AIPrompt,
		Status:        model.RoadmapActive,
	}
	if roadmap.GeneratedBy == "" {
		roadmap.GeneratedBy = model.GeneratedByAI
	}

	if err := c.RoadmapService.Create(roadmap); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, roadmap)
}

// List godoc
// @Summary List the caller's roadmaps
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Roadmap}
// @Router /api/roadmaps [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	roadmaps, err := c.RoadmapService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roadmaps)
}

// Get godoc
// @Summary Get one roadmap
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id} [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	roadmap, err := c.RoadmapService.Get(claims.UserID, roadmapID)
	if err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

// Update godoc
// @Summary Replace a roadmap's editable fields
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Param body body CreateRoadmapRequest true "roadmap payload"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id} [put]
func (c *RoadmapController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var req CreateRoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap := &model.Roadmap{
		GoalID:        req.GoalID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		TotalDuration: req.TotalDuration,
		Difficulty:    req.Difficulty,
		Phases:        req.Phases,
		GeneratedBy:   req.GeneratedBy,
		AIPrompt:      req.AIPrompt,
	}
	roadmap.ID = roadmapID

	if err := c.RoadmapService.Update(claims.UserID, roadmap); err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

type UpdateRoadmapStatusRequest struct {
	Status model.RoadmapStatus `json:"status" binding:"required,oneof=active completed paused"`
}

// UpdateStatus godoc
// @Summary Update roadmap status
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Param body body UpdateRoadmapStatusRequest true "status payload"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id}/status [put]
func (c *RoadmapController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var req UpdateRoadmapStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.RoadmapService.UpdateStatus(claims.UserID, roadmapID, req.Status); err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete a roadmap
// @Tags roadmaps
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{id} [delete]
func (c *RoadmapController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.RoadmapService.Delete(claims.UserID, roadmapID); err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type CompleteTopicRequest struct {
	Score     int `json:"score" binding:"omitempty,min=0,max=100"`
	TimeSpent int `json:"timeSpent" binding:"omitempty,min=0"` // seconds
}

// CompleteTopic godoc
// @Summary Mark a topic completed
// @Description Marks the topic done on the roadmap and mirrors the completion into the progress record.
// @Tags roadmaps
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Param topicId path string true "topic id"
// @Param body body CompleteTopicRequest true "completion payload"
// @Success 200 {object} util.Response{data=model.Roadmap}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/topics/{topicId}/complete [post]
func (c *RoadmapController) CompleteTopic(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var req CompleteTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	roadmap, err := c.RoadmapService.CompleteTopic(claims.UserID, roadmapID, ctx.Param("topicId"), req.Score, req.TimeSpent)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx)
			return
		}
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

func parseID(ctx *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, err
	}
	return uint(id), nil
}

func respondRoadmapError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrRoadmapNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
