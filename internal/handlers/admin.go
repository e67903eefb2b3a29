package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskledger/internal/models"
)

// DELETE /admin/tasks/:id
func (h *Handler) AdminDeleteTask(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.store.AdminDeleteTask(callerID, taskID); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /admin/tasks/count
func (h *Handler) GetTotalTaskCount(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	total, err := h.store.TotalTaskCount(callerID)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TotalTaskCountResponse{Total: total})
}

// PUT /admin/paused
func (h *Handler) SetPaused(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	request := &models.SetPausedRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil || request.Paused == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.store.SetPaused(callerID, *request.Paused); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// PUT /admin/max-tasks
func (h *Handler) SetMaxTasks(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	request := &models.SetMaxTasksRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil || request.MaxTasks == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.store.SetMaxTasksPerOwner(callerID, *request.MaxTasks); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// PUT /admin/transfer
func (h *Handler) TransferAdmin(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	request := &models.TransferAdminRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.store.TransferAdmin(callerID, request.Admin); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// GET /admin/events
//
// The full notification log, for external listeners. Admin only.
func (h *Handler) GetEvents(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}
	if callerID != h.store.Admin() {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "caller is not the administrator"})
		return
	}

	c.JSON(http.StatusOK, h.store.Events())
}
