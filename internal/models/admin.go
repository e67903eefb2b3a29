package models

import "github.com/google/uuid"

type SetPausedRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

type SetMaxTasksRequest struct {
	MaxTasks *int `json:"max_tasks" binding:"required"`
}

type TransferAdminRequest struct {
	Admin uuid.UUID `json:"admin" binding:"required"`
}
