package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskledger/internal/ledger"
	"taskledger/internal/middleware"
	"taskledger/internal/models"
)

func (h *Handler) caller(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
	return id, ok
}

// storeError maps a rejected store operation onto a status code. Every
// rejection carries the store's human-readable reason.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotOwner), errors.Is(err, ledger.ErrNotAdmin):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrPaused):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrLimitExceeded):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
	}
}

// POST /tasks
func (h *Handler) CreateTask(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	request := &models.CreateTaskRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	// absent fields take the basic-create defaults
	priority := ledger.PriorityMedium
	if request.Priority != nil {
		p, err := models.ParsePriority(*request.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		priority = p
	}

	var dueDate int64
	if request.DueDate != nil {
		dueDate = request.DueDate.Unix()
	}

	id, err := h.store.CreateTask(callerID, request.Title, request.Description, priority, dueDate)
	if err != nil {
		storeError(c, err)
		return
	}

	task, _ := h.store.GetTask(id)
	c.JSON(http.StatusCreated, models.TaskFromLedger(task))
}

// GET /tasks
//
// ?priority= filters by priority, ?completed= by completion flag; without
// either the caller's full list comes back in index order.
func (h *Handler) GetTasks(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	if name, present := c.GetQuery("priority"); present {
		priority, err := models.ParsePriority(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}

		tasks, err := h.store.TasksByPriority(callerID, priority)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.TasksFromLedger(tasks))
		return
	}

	if status, present := c.GetQuery("completed"); present {
		if status != "true" && status != "false" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "completed must be true or false"})
			return
		}
		tasks := h.store.TasksByStatus(callerID, status == "true")
		c.JSON(http.StatusOK, models.TasksFromLedger(tasks))
		return
	}

	c.JSON(http.StatusOK, models.TasksFromLedger(h.store.TasksOf(callerID)))
}

// GET /tasks/due-soon
func (h *Handler) GetTasksDueSoon(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.TasksFromLedger(h.store.TasksDueSoon(callerID)))
}

// GET /tasks/count
func (h *Handler) GetTaskCount(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.TaskCountResponse{Count: h.store.TaskCountOf(callerID)})
}

// GET /tasks/:id
//
// Reads are not owner-restricted, matching the store's public-read rule.
func (h *Handler) GetTask(c *gin.Context) {
	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	task, ok := h.store.GetTask(taskID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}

	c.JSON(http.StatusOK, models.TaskFromLedger(task))
}

// PUT /tasks/:id
func (h *Handler) UpdateTask(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	request := &models.EditTaskRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	var priority *ledger.Priority
	if request.Priority != nil {
		p, err := models.ParsePriority(*request.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		priority = &p
	}

	var dueDate *int64
	if request.DueDate != nil {
		due := request.DueDate.Unix()
		dueDate = &due
	}

	if err := h.store.EditTask(callerID, taskID, request.Title, request.Description, priority, dueDate); err != nil {
		storeError(c, err)
		return
	}

	task, _ := h.store.GetTask(taskID)
	c.JSON(http.StatusOK, models.TaskFromLedger(task))
}

// PATCH /tasks/:id/completion
func (h *Handler) SetTaskCompletion(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	request := &models.CompletionRequest{}
	if err := c.ShouldBindBodyWithJSON(request); err != nil || request.Completed == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.store.SetCompletion(callerID, taskID, *request.Completed); err != nil {
		storeError(c, err)
		return
	}

	task, _ := h.store.GetTask(taskID)
	c.JSON(http.StatusOK, models.TaskFromLedger(task))
}

// DELETE /tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	callerID, ok := h.caller(c)
	if !ok {
		return
	}

	taskID, err := parseTaskID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.store.DeleteTask(callerID, taskID); err != nil {
		storeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
