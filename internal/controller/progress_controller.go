package controller

import (
	"errors"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Get godoc
// @Summary Progress record for a roadmap
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	progress, err := c.ProgressService.GetByRoadmap(claims.UserID, roadmapID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// List godoc
// @Summary All progress records of the caller
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Progress}
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	records, err := c.ProgressService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Analytics godoc
// @Summary Analytics for a roadmap
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Success 200 {object} util.Response{data=model.Analytics}
// @Failure 404 {object} util.Response
// @Router /api/roadmaps/{id}/analytics [get]
func (c *ProgressController) Analytics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	analytics, err := c.ProgressService.GetAnalytics(claims.UserID, roadmapID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

func respondProgressError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProgressNotFound), errors.Is(err, util.ErrRoadmapNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
