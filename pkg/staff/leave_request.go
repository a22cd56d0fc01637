package staff

import (
	"encoding/json"
	"time"

	"github.com/vetcare-app/vetcare-backend/pkg/date"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveType is the kind of leave requested
type LeaveType string

// Leave types, matching the LeaveBalance counters
const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
	LeaveTypeAnnual LeaveType = "annual"
)

// LeaveOption is the length of each requested day
type LeaveOption string

// Leave options
const (
	LeaveOptionHalfDay LeaveOption = "half-day"
	LeaveOptionFullDay LeaveOption = "full-day"
)

// LeaveStatus is the decision state of a leave request
type LeaveStatus string

// Leave states. Approval and denial happen outside of staff self-service.
const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusDenied   LeaveStatus = "denied"
)

// LeaveRequest is submitted by a staff member and can be withdrawn while pending
type LeaveRequest struct {
	ID        primitive.ObjectID `bson:"_id"`
	LeaveType LeaveType          `bson:"leaveType"`
	StartDate time.Time          `bson:"startDate"`
	EndDate   time.Time          `bson:"endDate"`
	Option    LeaveOption        `bson:"option"`
	NoOfDays  float64            `bson:"noOfDays"`
	Reason    string             `bson:"reason,omitempty"`
	Status    LeaveStatus        `bson:"status"`
}

func (l *LeaveRequest) prepare() {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	if l.Status == "" {
		l.Status = LeaveStatusPending
	}
}

// IsPending reports whether the request can still be deleted. Requests stored without a status count as pending.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == "" || l.Status == LeaveStatusPending
}

// MarshalJSON renders dates as ISO-8601 strings
func (l LeaveRequest) MarshalJSON() ([]byte, error) {
	type leaveRequestView struct {
		ID        primitive.ObjectID `json:"_id"`
		LeaveType LeaveType          `json:"leaveType"`
		StartDate string             `json:"startDate"`
		EndDate   string             `json:"endDate"`
		Option    LeaveOption        `json:"option"`
		NoOfDays  float64            `json:"noOfDays"`
		Reason    string             `json:"reason,omitempty"`
		Status    LeaveStatus        `json:"status"`
	}

	return json.Marshal(leaveRequestView{
		ID:        l.ID,
		LeaveType: l.LeaveType,
		StartDate: date.FormatISO(l.StartDate),
		EndDate:   date.FormatISO(l.EndDate),
		Option:    l.Option,
		NoOfDays:  l.NoOfDays,
		Reason:    l.Reason,
		Status:    l.Status,
	})
}

// LeaveRequestInput is the body of a leave submission
type LeaveRequestInput struct {
	LeaveType string  `json:"leaveType" validate:"required,oneof=sick casual annual"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	Option    string  `json:"option" validate:"required,oneof=half-day full-day"`
	NoOfDays  float64 `json:"noOfDays" validate:"required,gt=0"`
	Reason    string  `json:"reason" validate:"max=1000"`
}
