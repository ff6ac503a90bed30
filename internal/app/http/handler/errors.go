package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamchat/internal/app/dto"
	"teamchat/internal/domain"
	"teamchat/internal/infrastructure/remote"
)

func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		c.JSON(de.HTTPStatus, dto.ErrorResponse{
			Error: dto.Error{
				Code:    string(de.Code),
				Message: de.Message,
			},
		})
		return
	}

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		h.Log.Warn("chat api error",
			zap.Int("status", apiErr.StatusCode),
			zap.String("path", apiErr.Path),
			zap.String("message", apiErr.Message),
		)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: dto.Error{
				Code:    string(domain.ErrorCodeUpstream),
				Message: apiErr.Message,
			},
		})
		return
	}

	h.Log.Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: dto.Error{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: dto.Error{
			Code:    string(domain.ErrorCodeBadRequest),
			Message: msg,
		},
	})
}
