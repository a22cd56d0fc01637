package staff

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository is a staff repository for testing. It applies the same conditional writes as the Mongo repository.
type MockRepository struct {
	mu      sync.Mutex
	Records []*StaffRecord
	// Err, when set, is returned by every call
	Err error
}

func (m *MockRepository) find(userID string) *StaffRecord {
	for _, record := range m.Records {
		if record.UserID.Hex() == userID {
			return record
		}
	}
	return nil
}

func copyRecord(record *StaffRecord) *StaffRecord {
	copied := *record
	copied.Tasks = append([]Task{}, record.Tasks...)
	copied.LeaveRequests = append([]LeaveRequest{}, record.LeaveRequests...)
	copied.Attendance = append([]AttendanceRecord{}, record.Attendance...)
	return &copied
}

// Add adds a staff record
func (m *MockRepository) Add(_ context.Context, record *StaffRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record.prepare(time.Now())
	m.Records = append(m.Records, copyRecord(record))
	return nil
}

// FindByUserID returns a copy of the staff record of a user. Field projection is ignored.
func (m *MockRepository) FindByUserID(_ context.Context, userID string, _ ...string) (*StaffRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	record := m.find(userID)
	if record == nil {
		return nil, ErrStaffNotFound
	}

	return copyRecord(record), nil
}

// UpdateAvailability sets the availability flag
func (m *MockRepository) UpdateAvailability(_ context.Context, userID string, availability Availability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record := m.find(userID)
	if record == nil {
		return ErrStaffNotFound
	}

	record.Availability = availability
	record.UpdatedAt = time.Now()
	return nil
}

// AddTask appends a task
func (m *MockRepository) AddTask(_ context.Context, userID string, task *Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record := m.find(userID)
	if record == nil {
		return ErrStaffNotFound
	}

	task.prepare()
	record.Tasks = append(record.Tasks, *task)
	record.UpdatedAt = time.Now()
	return nil
}

// CompleteTask applies the completion transition to a task
func (m *MockRepository) CompleteTask(_ context.Context, userID string, taskID string, completedAt time.Time) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	record := m.find(userID)
	if record == nil {
		return nil, ErrStaffNotFound
	}

	for i := range record.Tasks {
		if record.Tasks[i].ID.Hex() == taskID {
			record.Tasks[i].complete(completedAt, record.UserID)
			record.UpdatedAt = time.Now()
			task := record.Tasks[i]
			return &task, nil
		}
	}

	return nil, ErrTaskNotFound
}

// AddAttendance appends record unless an attendance record already falls into [dayStart, dayEnd)
func (m *MockRepository) AddAttendance(_ context.Context, userID string, attendance *AttendanceRecord, dayStart time.Time, dayEnd time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record := m.find(userID)
	if record == nil {
		return ErrStaffNotFound
	}

	for _, existing := range record.Attendance {
		if !existing.Date.Before(dayStart) && existing.Date.Before(dayEnd) {
			return ErrAttendanceAlreadyMarked
		}
	}

	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}
	record.Attendance = append(record.Attendance, *attendance)
	record.UpdatedAt = time.Now()
	return nil
}

// AddLeaveRequest appends a leave request
func (m *MockRepository) AddLeaveRequest(_ context.Context, userID string, request *LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record := m.find(userID)
	if record == nil {
		return ErrStaffNotFound
	}

	request.prepare()
	record.LeaveRequests = append(record.LeaveRequests, *request)
	record.UpdatedAt = time.Now()
	return nil
}

// DeletePendingLeaveRequest removes a leave request only while it is pending
func (m *MockRepository) DeletePendingLeaveRequest(_ context.Context, userID string, requestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	record := m.find(userID)
	if record == nil {
		return ErrStaffNotFound
	}

	for i, request := range record.LeaveRequests {
		if request.ID.Hex() != requestID {
			continue
		}

		if !request.IsPending() {
			return ErrLeaveRequestNotPending
		}

		record.LeaveRequests = append(record.LeaveRequests[:i], record.LeaveRequests[i+1:]...)
		record.UpdatedAt = time.Now()
		return nil
	}

	return ErrLeaveRequestNotFound
}
