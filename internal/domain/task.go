package domain

// Task represents a persisted time-bounded task.
// Timestamps are milliseconds since epoch, matching the persisted wire shape.
// Tasks are immutable once created; there is no update operation.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   int64  `json:"startTime"`
	EndTime     int64  `json:"endTime"`
}

// TaskDraft is unpersisted task input awaiting validation.
type TaskDraft struct {
	Title       string
	Description string
	StartTime   int64
	EndTime     int64
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.Title == "" {
		return false
	}
	return t.EndTime >= t.StartTime
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
