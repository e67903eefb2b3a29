package ledger

import "github.com/google/uuid"

type EventType string

const (
	EventTaskCreated       EventType = "task-created"
	EventTaskUpdated       EventType = "task-updated"
	EventCompletionChanged EventType = "completion-changed"
	EventTaskDeleted       EventType = "task-deleted"
	EventPauseChanged      EventType = "pause-changed"
	EventLimitChanged      EventType = "limit-changed"
	EventAdminChanged      EventType = "admin-changed"
)

// Event is a flat record of a store state transition. Only the fields
// relevant to the event's type are populated.
type Event struct {
	Type        EventType `json:"type"`
	TaskID      uint64    `json:"task_id,omitempty"`
	Owner       uuid.UUID `json:"owner,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority,omitempty"`
	DueDate     int64     `json:"due_date,omitempty"`
	Completed   bool      `json:"completed,omitempty"`
	Paused      bool      `json:"paused,omitempty"`
	MaxTasks    int       `json:"max_tasks,omitempty"`
	Admin       uuid.UUID `json:"admin,omitempty"`
	At          int64     `json:"at"`
}

// emit appends under the store lock; callers must hold s.mu.
func (s *Store) emit(ev Event) {
	ev.At = s.now().Unix()
	s.events = append(s.events, ev)
}

// Events returns a copy of the full notification log in emission order.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
