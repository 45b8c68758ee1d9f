// Package handler はcontactフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wealth_backend/internal/feature/contact/domain/entity"
	"wealth_backend/internal/feature/contact/transport/http/dto"
	"wealth_backend/internal/platform/http/response"
)

// ContactUsecase はお問い合わせ受付のユースケースを定義します。
type ContactUsecase interface {
	Submit(ctx context.Context, name, email, message string) (*entity.ContactMessage, error)
}

// ContactHandler は/contactを処理します。認証は不要です。
type ContactHandler struct {
	uc ContactUsecase
}

// NewContactHandler はContactHandlerの新しいインスタンスを生成します。
func NewContactHandler(uc ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit はお問い合わせを受け付けます。
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	msg, err := h.uc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("contact message received", "message_id", msg.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Message sent successfully"})
}
