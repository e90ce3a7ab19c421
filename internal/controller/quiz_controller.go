package controller

import (
	"errors"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type CreateQuizRequest struct {
	RoadmapID   uint               `json:"roadmapId" binding:"required"`
	TopicID     string             `json:"topicId" binding:"required"`
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category" binding:"required"`
	Difficulty  model.Difficulty   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	TimeLimit   int                `json:"timeLimit" binding:"omitempty,min=1"`
	Questions   model.QuestionList `json:"questions"`
	GeneratedBy model.GeneratedBy  `json:"generatedBy" binding:"omitempty,oneof=ai admin"`
	AIPrompt    string             `json:"aiPrompt"`
}

// Create godoc
// @Summary Create a quiz for a roadmap topic
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateQuizRequest true "quiz payload"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		UserID:      claims.UserID,
		RoadmapID:   req.RoadmapID,
		TopicID:     req.TopicID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		TimeLimit:   req.TimeLimit,
		Questions:   req.Questions,
		GeneratedBy: req.GeneratedBy,
		AIPrompt:    req.AIPrompt,
		Status:      model.QuizActive,
	}
	if quiz.TimeLimit == 0 {
		quiz.TimeLimit = 30
	}
	if quiz.GeneratedBy == "" {
		quiz.GeneratedBy = model.GeneratedByAI
	}

	if err := c.QuizService.Create(quiz); err != nil {
		switch {
		case errors.Is(err, util.ErrRoadmapNotFound), errors.Is(err, util.ErrTopicNotFound):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary Get one quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quizID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	quiz, err := c.QuizService.Get(claims.UserID, quizID)
	if err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// ListByRoadmap godoc
// @Summary List quizzes of a roadmap
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "roadmap id"
// @Param topicId query string false "restrict to one topic"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/roadmaps/{id}/quizzes [get]
func (c *QuizController) ListByRoadmap(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	roadmapID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var quizzes []model.Quiz
	if topicID := ctx.Query("topicId"); topicID != "" {
		quizzes, err = c.QuizService.ListByTopic(claims.UserID, roadmapID, topicID)
		if err != nil && errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx)
			return
		}
	} else {
		quizzes, err = c.QuizService.ListByRoadmap(claims.UserID, roadmapID)
	}
	if err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Delete godoc
// @Summary Delete a quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quizID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	if err := c.QuizService.Delete(claims.UserID, quizID); err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type UpdateQuizStatusRequest struct {
	Status model.QuizStatus `json:"status" binding:"required,oneof=active inactive"`
}

// UpdateStatus godoc
// @Summary Activate or deactivate a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param body body UpdateQuizStatusRequest true "status payload"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/status [put]
func (c *QuizController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quizID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var req UpdateQuizStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.SetStatus(claims.UserID, quizID, req.Status); err != nil {
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type SubmitQuizRequest struct {
	Answers   []service.SubmittedAnswer `json:"answers" binding:"required"`
	TimeSpent int                       `json:"timeSpent" binding:"omitempty,min=0"` // seconds
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Grades the submission and records the attempt on the caller's progress for the quiz's roadmap.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param body body SubmitQuizRequest true "submission payload"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quizID, err := parseID(ctx, "id")
	if err != nil {
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.Submit(claims.UserID, quizID, req.Answers, req.TimeSpent)
	if err != nil {
		if errors.Is(err, util.ErrQuizInactive) {
			util.BadRequest(ctx, err.Error())
			return
		}
		respondQuizError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}

func respondQuizError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
