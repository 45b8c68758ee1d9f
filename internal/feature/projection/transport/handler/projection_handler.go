// Package handler はprojectionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealth_backend/internal/feature/projection/domain/entity"
	"wealth_backend/internal/feature/projection/transport/http/dto"
	"wealth_backend/internal/platform/http/response"
)

// ProjectionUsecase は投資シミュレーションのユースケースを定義します。
type ProjectionUsecase interface {
	Calculate(in entity.Input) entity.Projection
}

// ProjectionHandler は/calculateを処理します。認証は不要です。
type ProjectionHandler struct {
	uc ProjectionUsecase
}

// NewProjectionHandler はProjectionHandlerの新しいインスタンスを生成します。
func NewProjectionHandler(uc ProjectionUsecase) *ProjectionHandler {
	return &ProjectionHandler{uc: uc}
}

// Calculate は積立投資の年次推移を計算して返します。
func (h *ProjectionHandler) Calculate(c *gin.Context) {
	var req dto.CalculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCalculateResp(h.uc.Calculate(req.ToInput())))
}
