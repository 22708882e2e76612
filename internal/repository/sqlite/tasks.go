package sqlite

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"nexttick/internal/domain"
	"nexttick/internal/errors"
	"nexttick/internal/validation"
)

// tasksKey is the fixed record name the whole task collection
// round-trips under, as a single JSON array blob.
const tasksKey = "tasks"

// nowMillis is a variable that can be replaced in tests
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// TaskRepository owns the persisted ordered collection of tasks. Every
// mutation reads the full blob, applies the change in memory, and
// writes the full blob back. Mutations are serialized through a single
// mutex so overlapping writers cannot discard each other's updates.
type TaskRepository struct {
	store     RecordStore
	validator *validation.TaskValidator

	mu sync.Mutex
}

// NewTaskRepository creates a new task repository over the given record store
func NewTaskRepository(store RecordStore, validator *validation.TaskValidator) *TaskRepository {
	return &TaskRepository{
		store:     store,
		validator: validator,
	}
}

// List returns all persisted tasks in insertion order. Each call
// re-reads the backing store so the result reflects the latest
// persisted state, never a cached view.
func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.readAll(ctx)
}

// Create validates the draft, assigns an id from the current clock
// reading, appends the task, and persists the whole collection. On
// rejection no mutation occurs and the validation reason is returned.
func (r *TaskRepository) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := r.validator.ValidateDraft(draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:          nextTaskID(tasks),
		Title:       draft.Title,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
	}

	tasks = append(tasks, task)
	if err := r.writeAll(ctx, tasks); err != nil {
		return nil, err
	}

	return &task, nil
}

// DeleteOne removes the task with the matching id and persists the
// result, preserving the relative order of the rest. Deleting an id
// that does not exist is a no-op, not an error.
func (r *TaskRepository) DeleteOne(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}

	return r.writeAll(ctx, remaining)
}

// DeleteAll clears the collection by removing the persisted record
// entirely, distinct from persisting an empty collection.
func (r *TaskRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Delete(ctx, tasksKey)
}

// readAll reads and decodes the full task blob. An absent key is an
// empty collection.
func (r *TaskRepository) readAll(ctx context.Context) ([]domain.Task, error) {
	blob, found, err := r.store.Get(ctx, tasksKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Task{}, nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(blob), &tasks); err != nil {
		return nil, errors.NewStorageError("decode tasks", err)
	}

	return tasks, nil
}

// writeAll encodes and persists the full task collection
func (r *TaskRepository) writeAll(ctx context.Context, tasks []domain.Task) error {
	blob, err := json.Marshal(tasks)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}

	return r.store.Put(ctx, tasksKey, string(blob))
}

// nextTaskID assigns an id from the current millisecond clock reading.
// When two creations land within the same clock tick the id bumps past
// the highest existing one, so ids stay unique and increasing.
func nextTaskID(tasks []domain.Task) int64 {
	id := nowMillis()
	for _, task := range tasks {
		if task.ID >= id {
			id = task.ID + 1
		}
	}
	return id
}
