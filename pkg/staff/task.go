package staff

import (
	"encoding/json"
	"time"

	"github.com/vetcare-app/vetcare-backend/pkg/date"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the state of a task
type TaskStatus string

// Task states
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// PriorityLevel of a task
type PriorityLevel string

// Priority levels
const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// Task is assigned to a staff member by a manager. The completion fields are set if and only if the task is completed.
type Task struct {
	ID              primitive.ObjectID  `bson:"_id"`
	TaskTitle       string              `bson:"taskTitle" validate:"required"`
	TaskDescription string              `bson:"taskDescription,omitempty"`
	PriorityLevel   PriorityLevel       `bson:"priorityLevel,omitempty" validate:"omitempty,oneof=low medium high"`
	StartDate       time.Time           `bson:"startDate" validate:"required"`
	DueDate         time.Time           `bson:"dueDate" validate:"required"`
	Status          TaskStatus          `bson:"status" validate:"oneof=pending completed"`
	CompletedDate   *time.Time          `bson:"completedDate,omitempty"`
	CompletedBy     *primitive.ObjectID `bson:"completedBy,omitempty"`
	Attachments     []string            `bson:"attachments"`
}

func (t *Task) prepare() {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Attachments == nil {
		t.Attachments = []string{}
	}
}

// complete applies the completion transition
func (t *Task) complete(completedAt time.Time, completedBy primitive.ObjectID) {
	t.Status = TaskStatusCompleted
	t.CompletedDate = &completedAt
	t.CompletedBy = &completedBy
}

// MarshalJSON renders dates as ISO-8601 strings
func (t Task) MarshalJSON() ([]byte, error) {
	type taskView struct {
		ID              primitive.ObjectID  `json:"_id"`
		TaskTitle       string              `json:"taskTitle"`
		TaskDescription string              `json:"taskDescription,omitempty"`
		PriorityLevel   PriorityLevel       `json:"priorityLevel,omitempty"`
		StartDate       string              `json:"startDate"`
		DueDate         string              `json:"dueDate"`
		Status          TaskStatus          `json:"status"`
		CompletedDate   *string             `json:"completedDate,omitempty"`
		CompletedBy     *primitive.ObjectID `json:"completedBy,omitempty"`
		Attachments     []string            `json:"attachments"`
	}

	view := taskView{
		ID:              t.ID,
		TaskTitle:       t.TaskTitle,
		TaskDescription: t.TaskDescription,
		PriorityLevel:   t.PriorityLevel,
		StartDate:       date.FormatISO(t.StartDate),
		DueDate:         date.FormatISO(t.DueDate),
		Status:          t.Status,
		CompletedBy:     t.CompletedBy,
		Attachments:     t.Attachments,
	}
	if view.Attachments == nil {
		view.Attachments = []string{}
	}
	if t.CompletedDate != nil {
		completed := date.FormatISO(*t.CompletedDate)
		view.CompletedDate = &completed
	}

	return json.Marshal(view)
}
