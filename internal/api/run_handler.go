package api

import (
	"errors"
	"net/http"

	"github.com/Drakonfox/Hard-to-Die/internal/constants"
	"github.com/Drakonfox/Hard-to-Die/internal/service"
	"github.com/Drakonfox/Hard-to-Die/internal/storage"

	"github.com/gin-gonic/gin"
)

// RunHandler groups all run-related HTTP handlers.
type RunHandler struct {
	manager *service.Manager
	repo    storage.Repository
}

// NewRunHandler creates a new RunHandler with the given run manager and
// record repository.
func NewRunHandler(manager *service.Manager, repo storage.Repository) *RunHandler {
	return &RunHandler{manager: manager, repo: repo}
}

// session resolves the :runID route param, writing the 404 itself when the
// run does not exist.
func (h *RunHandler) session(c *gin.Context) (*service.Session, bool) {
	s, err := h.manager.Get(c.Param("runID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		return nil, false
	}
	return s, true
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrUnknownDifficulty):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrWrongPhase),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrAlreadyOwned),
		errors.Is(err, service.ErrInventoryFull),
		errors.Is(err, service.ErrMaxLevel),
		errors.Is(err, service.ErrPendingPurchase),
		errors.Is(err, service.ErrNoPendingPurchase),
		errors.Is(err, service.ErrBadReplacement):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}
