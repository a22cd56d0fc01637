package staff

import (
	"context"
	"time"

	"github.com/vetcare-app/vetcare-backend/pkg/date"
)

// SubmitLeaveRequest appends a pending leave request. noOfDays is taken as given and not checked against the balance.
func (s *Service) SubmitLeaveRequest(ctx context.Context, userID string, input LeaveRequestInput) (*LeaveRequest, error) {
	err := validateStruct(input)
	if err != nil {
		return nil, err
	}

	location := s.location()
	startDate, err := parseDay(input.StartDate, "startDate", location)
	if err != nil {
		return nil, err
	}

	endDate, err := parseDay(input.EndDate, "endDate", location)
	if err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, validationError("endDate must not be before startDate")
	}

	request := &LeaveRequest{
		LeaveType: LeaveType(input.LeaveType),
		StartDate: startDate,
		EndDate:   endDate,
		Option:    LeaveOption(input.Option),
		NoOfDays:  input.NoOfDays,
		Reason:    input.Reason,
		Status:    LeaveStatusPending,
	}

	err = s.withLock(ctx, userID, func() error {
		return s.Repository.AddLeaveRequest(ctx, userID, request)
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

// ListLeaveRequests returns the leave requests of an employee in submission order
func (s *Service) ListLeaveRequests(ctx context.Context, userID string) ([]LeaveRequest, error) {
	record, err := s.find(ctx, userID, "leaveRequests")
	if err != nil {
		return nil, err
	}

	if record.LeaveRequests == nil {
		return []LeaveRequest{}, nil
	}
	return record.LeaveRequests, nil
}

// DeleteLeaveRequest withdraws a pending leave request. Decided requests are ErrLeaveRequestNotPending.
func (s *Service) DeleteLeaveRequest(ctx context.Context, userID string, requestID string) error {
	return s.withLock(ctx, userID, func() error {
		return s.Repository.DeletePendingLeaveRequest(ctx, userID, requestID)
	})
}

// GetLeaveBalance returns the remaining days per leave type
func (s *Service) GetLeaveBalance(ctx context.Context, userID string) (*LeaveBalance, error) {
	record, err := s.find(ctx, userID, "leaveBalance")
	if err != nil {
		return nil, err
	}

	balance := record.LeaveBalance
	if balance == (LeaveBalance{}) {
		balance = DefaultLeaveBalance
	}

	return &balance, nil
}

func parseDay(value string, field string, location *time.Location) (time.Time, error) {
	day, err := date.ParseDay(value, location)
	if err != nil {
		return time.Time{}, validationError(field + " must be a date")
	}
	return day, nil
}
