package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store-ratings-api/services"
)

// respondError maps a service failure to a status code and {code, message}
// body. Anything unrecognized is a 500 with a generic message; storage
// details never reach the client.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": vErr.Message})
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateStoreEmail):
		c.JSON(http.StatusConflict, gin.H{"code": "DUPLICATE_EMAIL", "message": err.Error()})
	case errors.Is(err, services.ErrDuplicateRating):
		c.JSON(http.StatusConflict, gin.H{"code": "DUPLICATE_RATING", "message": err.Error()})
	case errors.Is(err, services.ErrNotRatingOwner),
		errors.Is(err, services.ErrNotStoreOwner),
		errors.Is(err, services.ErrOwnerHasNoStore):
		c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "message": err.Error()})
	case errors.Is(err, services.ErrSamePassword),
		errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "message": err.Error()})
	default:
		logrus.WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "Something went wrong"})
	}
}
