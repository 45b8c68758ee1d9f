// Package handler はgoalsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wealth_backend/internal/feature/goals/domain/entity"
	"wealth_backend/internal/feature/goals/transport/http/dto"
	"wealth_backend/internal/platform/http/response"
	jwtmw "wealth_backend/internal/platform/jwt"
)

// GoalUsecase は目標管理のユースケースを定義します。
type GoalUsecase interface {
	Create(ctx context.Context, ownerID string, draft entity.Goal) (*entity.Goal, error)
	List(ctx context.Context, ownerID string) ([]entity.Goal, error)
	Update(ctx context.Context, ownerID, goalID string, patch entity.GoalPatch) (*entity.Goal, error)
	Delete(ctx context.Context, ownerID, goalID string) error
}

// GoalHandler は/goals配下のリクエストを処理します。すべてAuthRequiredの後段に置かれます。
type GoalHandler struct {
	uc GoalUsecase
}

// NewGoalHandler はGoalHandlerの新しいインスタンスを生成します。
func NewGoalHandler(uc GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// owner returns the authenticated user id, aborting with 401 when absent.
func owner(c *gin.Context) (string, bool) {
	id, ok := jwtmw.UserID(c)
	if !ok {
		response.Unauthenticated(c)
	}
	return id, ok
}

// Create は POST /goals を処理します。
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	var req dto.CreateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	goal, err := h.uc.Create(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("goal created", "user_id", userID, "goal_id", goal.ID)
	c.JSON(http.StatusOK, dto.ToGoalResp(*goal))
}

// List は GET /goals を処理します。
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	goals, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResps(goals))
}

// Update は PUT /goals/:id を処理します。
func (h *GoalHandler) Update(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	goal, err := h.uc.Update(c.Request.Context(), userID, c.Param("id"), req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResp(*goal))
}

// Delete は DELETE /goals/:id を処理します。
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	goalID := c.Param("id")
	if err := h.uc.Delete(c.Request.Context(), userID, goalID); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("goal deleted", "user_id", userID, "goal_id", goalID)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Goal deleted"})
}
