package staff

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability tells whether a staff member can currently take work
type Availability string

const (
	// AvailabilityAvailable is the default availability
	AvailabilityAvailable Availability = "available"
	// AvailabilityUnavailable marks a staff member as not available
	AvailabilityUnavailable Availability = "unavailable"
)

// Valid reports whether a is a known availability
func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityUnavailable
}

// LeaveBalance holds remaining days per leave type. It is informational and never enforced.
type LeaveBalance struct {
	Annual float64 `json:"annual" bson:"annual"`
	Casual float64 `json:"casual" bson:"casual"`
	Sick   float64 `json:"sick" bson:"sick"`
}

// DefaultLeaveBalance is the balance of a newly onboarded employee
var DefaultLeaveBalance = LeaveBalance{Annual: 14, Casual: 7, Sick: 7}

// StaffRecord is the per employee aggregate
type StaffRecord struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Availability  Availability       `json:"availability" bson:"availability"`
	Tasks         []Task             `json:"tasks" bson:"tasks"`
	LeaveRequests []LeaveRequest     `json:"leaveRequests" bson:"leaveRequests"`
	Attendance    []AttendanceRecord `json:"attendance" bson:"attendance"`
	LeaveBalance  LeaveBalance       `json:"leaveBalance" bson:"leaveBalance"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NewStaffRecord builds the record created when an employee is onboarded
func NewStaffRecord(userID primitive.ObjectID) *StaffRecord {
	return &StaffRecord{
		UserID:        userID,
		Availability:  AvailabilityAvailable,
		Tasks:         []Task{},
		LeaveRequests: []LeaveRequest{},
		Attendance:    []AttendanceRecord{},
		LeaveBalance:  DefaultLeaveBalance,
	}
}

// prepare fills ids and defaults before a record is first stored
func (s *StaffRecord) prepare(now time.Time) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.Availability == "" {
		s.Availability = AvailabilityAvailable
	}
	if s.LeaveBalance == (LeaveBalance{}) {
		s.LeaveBalance = DefaultLeaveBalance
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.LeaveRequests == nil {
		s.LeaveRequests = []LeaveRequest{}
	}
	if s.Attendance == nil {
		s.Attendance = []AttendanceRecord{}
	}

	for i := range s.Tasks {
		s.Tasks[i].prepare()
	}
	for i := range s.LeaveRequests {
		s.LeaveRequests[i].prepare()
	}
	for i := range s.Attendance {
		if s.Attendance[i].ID.IsZero() {
			s.Attendance[i].ID = primitive.NewObjectID()
		}
	}

	s.CreatedAt = now
	s.UpdatedAt = now
}
