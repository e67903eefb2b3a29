// Package ledger holds the task store: per-owner task records behind a single
// lock, with every operation applied atomically — a call either fully commits
// or fully rejects, and rejected calls leave no partial writes behind.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// DueSoonWindow is the interval ahead of now within which an incomplete,
// dated task counts as due soon.
const DueSoonWindow = 24 * time.Hour

const DefaultMaxTasksPerOwner = 100

// Task is a single stored record. ID, Owner and CreatedAt are immutable after
// creation. DueDate and CreatedAt are unix seconds; DueDate 0 means unset.
type Task struct {
	ID          uint64
	Title       string
	Description string
	Completed   bool
	Owner       uuid.UUID
	Priority    Priority
	DueDate     int64
	CreatedAt   int64
}

type Store struct {
	mu sync.RWMutex

	nextID uint64
	tasks  map[uint64]Task

	// ownerIndex[o] lists the ids of o's live tasks in creation order;
	// removal swaps with the last entry, so order is not stable across deletes.
	ownerIndex map[uuid.UUID][]uint64

	admin    uuid.UUID
	paused   bool
	maxTasks int

	now func() time.Time

	events []Event
}

type Option func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store administered by admin.
func New(admin uuid.UUID, opts ...Option) *Store {
	s := &Store{
		tasks:      make(map[uint64]Task),
		ownerIndex: make(map[uuid.UUID][]uint64),
		admin:      admin,
		maxTasks:   DefaultMaxTasksPerOwner,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask inserts a new record owned by caller and returns its id.
// Ids are strictly increasing and never reused, even after deletion.
func (s *Store) CreateTask(caller uuid.UUID, title, description string, priority Priority, dueDate int64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return 0, ErrPaused
	}
	if priority > PriorityHigh {
		return 0, ErrInvalidPriority
	}
	if len(s.ownerIndex[caller]) >= s.maxTasks {
		return 0, ErrLimitExceeded
	}

	s.nextID++
	id := s.nextID

	task := Task{
		ID:          id,
		Title:       title,
		Description: description,
		Owner:       caller,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   s.now().Unix(),
	}

	s.tasks[id] = task
	s.ownerIndex[caller] = append(s.ownerIndex[caller], id)

	s.emit(Event{
		Type:     EventTaskCreated,
		TaskID:   id,
		Owner:    caller,
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	})

	return id, nil
}

// EditTask overwrites the mutable fields of caller's task. A nil priority or
// dueDate leaves that field unchanged. Editing is allowed while paused.
func (s *Store) EditTask(caller uuid.UUID, id uint64, title, description string, priority *Priority, dueDate *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.Owner != caller {
		return ErrNotOwner
	}
	if priority != nil && *priority > PriorityHigh {
		return ErrInvalidPriority
	}

	task.Title = title
	task.Description = description
	if priority != nil {
		task.Priority = *priority
	}
	if dueDate != nil {
		task.DueDate = *dueDate
	}
	s.tasks[id] = task

	s.emit(Event{
		Type:        EventTaskUpdated,
		TaskID:      id,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
	})

	return nil
}

// SetCompletion sets the completion flag of caller's task. Setting the flag
// to its current value is a no-op and emits nothing.
func (s *Store) SetCompletion(caller uuid.UUID, id uint64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.Owner != caller {
		return ErrNotOwner
	}
	if task.Completed == completed {
		return nil
	}

	task.Completed = completed
	s.tasks[id] = task

	s.emit(Event{
		Type:      EventCompletionChanged,
		TaskID:    id,
		Completed: completed,
	})

	return nil
}

// DeleteTask removes caller's task and its index entry as a unit.
func (s *Store) DeleteTask(caller uuid.UUID, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.Owner != caller {
		return ErrNotOwner
	}

	s.removeLocked(task)
	return nil
}

// AdminDeleteTask removes any owner's task. Caller must be the administrator;
// the index entry removed is the stored owner's, not the caller's.
func (s *Store) AdminDeleteTask(caller uuid.UUID, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return ErrNotAdmin
	}
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotOwner
	}

	s.removeLocked(task)
	return nil
}

// removeLocked deletes task from the record map and swaps its index entry
// with the owner's last entry before shrinking. Callers must hold s.mu.
func (s *Store) removeLocked(task Task) {
	ids := s.ownerIndex[task.Owner]
	for i, tid := range ids {
		if tid == task.ID {
			last := len(ids) - 1
			ids[i] = ids[last]
			s.ownerIndex[task.Owner] = ids[:last]
			break
		}
	}

	delete(s.tasks, task.ID)

	s.emit(Event{Type: EventTaskDeleted, TaskID: task.ID})
}

// GetTask returns the record for id. Reads are not owner-restricted; a
// missing or deleted id reads as the zero record with ok=false.
func (s *Store) GetTask(id uint64) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	return task, ok
}

// TasksOf returns caller's tasks in index order.
func (s *Store) TasksOf(caller uuid.UUID) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(caller, func(Task) bool { return true })
}

// TasksByStatus returns caller's tasks whose completion flag equals completed.
func (s *Store) TasksByStatus(caller uuid.UUID, completed bool) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(caller, func(t Task) bool { return t.Completed == completed })
}

// TasksByPriority returns caller's tasks with the given priority.
func (s *Store) TasksByPriority(caller uuid.UUID, priority Priority) ([]Task, error) {
	if priority > PriorityHigh {
		return nil, ErrInvalidPriority
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(caller, func(t Task) bool { return t.Priority == priority }), nil
}

// TasksDueSoon returns caller's incomplete tasks with a due date inside the
// due-soon window. Tasks without a due date never qualify.
func (s *Store) TasksDueSoon(caller uuid.UUID) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	horizon := s.now().Add(DueSoonWindow).Unix()
	return s.collectLocked(caller, func(t Task) bool {
		return !t.Completed && t.DueDate != 0 && t.DueDate <= horizon
	})
}

func (s *Store) collectLocked(owner uuid.UUID, keep func(Task) bool) []Task {
	ids := s.ownerIndex[owner]
	out := make([]Task, 0, len(ids))
	for _, id := range ids {
		if t := s.tasks[id]; keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// TaskCountOf returns the number of caller's live tasks.
func (s *Store) TaskCountOf(caller uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ownerIndex[caller])
}

// TotalTaskCount returns the global id counter: the number of tasks ever
// created, deleted ones included. Administrator only.
func (s *Store) TotalTaskCount(caller uuid.UUID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if caller != s.admin {
		return 0, ErrNotAdmin
	}
	return s.nextID, nil
}

// SetPaused toggles the pause flag. Pausing blocks creation only; edits,
// deletes, completion changes and reads stay available.
func (s *Store) SetPaused(caller uuid.UUID, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return ErrNotAdmin
	}
	if s.paused == paused {
		return nil
	}

	s.paused = paused
	s.emit(Event{Type: EventPauseChanged, Paused: paused})
	return nil
}

// SetMaxTasksPerOwner updates the per-owner task cap. Lowering the cap below
// an owner's current count blocks further creates but keeps existing tasks.
func (s *Store) SetMaxTasksPerOwner(caller uuid.UUID, max int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return ErrNotAdmin
	}
	if s.maxTasks == max {
		return nil
	}

	s.maxTasks = max
	s.emit(Event{Type: EventLimitChanged, MaxTasks: max})
	return nil
}

// TransferAdmin hands the administrator role to newAdmin.
func (s *Store) TransferAdmin(caller, newAdmin uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return ErrNotAdmin
	}
	if s.admin == newAdmin {
		return nil
	}

	s.admin = newAdmin
	s.emit(Event{Type: EventAdminChanged, Admin: newAdmin})
	return nil
}

// Admin returns the current administrator identity.
func (s *Store) Admin() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.admin
}

// Paused reports whether creation is currently blocked.
func (s *Store) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.paused
}

// MaxTasksPerOwner returns the configured per-owner cap.
func (s *Store) MaxTasksPerOwner() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxTasks
}
