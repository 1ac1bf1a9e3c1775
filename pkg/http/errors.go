package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/companion"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, companion.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, companion.ErrNotAuthenticated),
		errors.Is(err, companion.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken):
		return http.StatusUnauthorized
	case errors.Is(err, companion.ErrNotRecipient),
		errors.Is(err, companion.ErrPermissionDenied),
		errors.Is(err, companion.ErrNotElderly),
		errors.Is(err, companion.ErrNotConnected):
		return http.StatusForbidden
	case errors.Is(err, companion.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, companion.ErrEmailTaken),
		errors.Is(err, companion.ErrRequestNotPending):
		return http.StatusConflict
	case errors.Is(err, companion.ErrNoCaregivers):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		serverLogger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func respond(c *gin.Context, body any, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func respondCreated(c *gin.Context, body any, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, body)
}

func respondNoContent(c *gin.Context, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
