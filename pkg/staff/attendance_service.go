package staff

import (
	"context"
	"time"

	"github.com/vetcare-app/vetcare-backend/pkg/date"
)

// MarkAttendance records today's check-in and check-out. A second record on the same day is ErrAttendanceAlreadyMarked.
func (s *Service) MarkAttendance(ctx context.Context, userID string, input AttendanceInput) (*AttendanceView, error) {
	err := validateStruct(input)
	if err != nil {
		return nil, err
	}

	location := s.location()
	today := date.TruncateToDay(s.now(), location)

	checkIn, err := parseOptionalClock(input.CheckIn, today, "checkIn")
	if err != nil {
		return nil, err
	}

	checkOut, err := parseOptionalClock(input.CheckOut, today, "checkOut")
	if err != nil {
		return nil, err
	}

	attendance := &AttendanceRecord{Date: today, CheckIn: checkIn, CheckOut: checkOut}

	err = s.withLock(ctx, userID, func() error {
		record, err := s.find(ctx, userID, "attendance")
		if err != nil {
			return err
		}

		for _, existing := range record.Attendance {
			if date.SameDay(existing.Date, today, location) {
				return ErrAttendanceAlreadyMarked
			}
		}

		// the conditional write still refuses a second record if another instance got here first
		return s.Repository.AddAttendance(ctx, userID, attendance, today, date.NextDay(today))
	})
	if err != nil {
		return nil, err
	}

	view := attendance.View(location)
	return &view, nil
}

// ListAttendance returns all attendance records with times of day as HH:MM
func (s *Service) ListAttendance(ctx context.Context, userID string) ([]AttendanceView, error) {
	record, err := s.find(ctx, userID, "attendance")
	if err != nil {
		return nil, err
	}

	location := s.location()
	views := make([]AttendanceView, 0, len(record.Attendance))
	for _, attendance := range record.Attendance {
		views = append(views, attendance.View(location))
	}

	return views, nil
}

func parseOptionalClock(value string, day time.Time, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := date.ParseClock(value, day)
	if err != nil {
		return nil, validationError(field + " must be a time in HH:MM format")
	}

	return &t, nil
}
