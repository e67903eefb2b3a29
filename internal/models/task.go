package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskledger/internal/ledger"
)

// Priority travels over the wire as a named variant rather than the store's
// raw integer.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ParsePriority(name string) (ledger.Priority, error) {
	switch name {
	case PriorityLow:
		return ledger.PriorityLow, nil
	case PriorityMedium:
		return ledger.PriorityMedium, nil
	case PriorityHigh:
		return ledger.PriorityHigh, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", name)
	}
}

func PriorityName(p ledger.Priority) string {
	switch p {
	case ledger.PriorityLow:
		return PriorityLow
	case ledger.PriorityHigh:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type EditTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type CompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type TaskResponse struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Owner       uuid.UUID  `json:"owner"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskFromLedger converts a raw store record into the wire shape: unix-second
// timestamps become times, the unset due-date sentinel becomes an absent field.
func TaskFromLedger(t ledger.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Owner:       t.Owner,
		Priority:    PriorityName(t.Priority),
		CreatedAt:   time.Unix(t.CreatedAt, 0).UTC(),
	}
	if t.DueDate != 0 {
		due := time.Unix(t.DueDate, 0).UTC()
		resp.DueDate = &due
	}
	return resp
}

func TasksFromLedger(tasks []ledger.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskFromLedger(t))
	}
	return out
}

type TaskCountResponse struct {
	Count int `json:"count"`
}

type TotalTaskCountResponse struct {
	Total uint64 `json:"total"`
}
