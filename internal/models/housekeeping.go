package models

const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
	TaskVerified   = "verified"
)

var (
	TaskStatuses   = []string{TaskPending, TaskInProgress, TaskCompleted, TaskVerified}
	CleaningTypes  = []string{"daily", "deep", "checkout", "maintenance"}
	TaskPriorities = []string{"low", "medium", "high", "urgent"}
)

func IsTaskStatus(s string) bool   { return contains(TaskStatuses, s) }
func IsCleaningType(s string) bool { return contains(CleaningTypes, s) }
func IsTaskPriority(s string) bool { return contains(TaskPriorities, s) }

type HousekeepingTask struct {
	ID           string `json:"_id,omitempty"`
	RoomID       string `json:"roomId"`
	RoomNumber   string `json:"roomNumber,omitempty"`
	CleaningType string `json:"cleaningType"`
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	Status       string `json:"status,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Open reports whether the task still needs work.
func (t HousekeepingTask) Open() bool {
	return t.Status == "" || t.Status == TaskPending || t.Status == TaskInProgress
}
