package staff

import "github.com/vetcare-app/vetcare-backend/pkg/communication"

var (
	// ErrStaffNotFound no staff record belongs to the user
	ErrStaffNotFound = communication.NewError(communication.ErrNotFound, "Staff data not found")
	// ErrProfileNotFound the identity or the staff record of a profile is missing
	ErrProfileNotFound = communication.NewError(communication.ErrNotFound, "Staff profile not found")
	// ErrTaskNotFound the staff record has no task with the id
	ErrTaskNotFound = communication.NewError(communication.ErrNotFound, "Task not found")
	// ErrLeaveRequestNotFound the staff record has no leave request with the id
	ErrLeaveRequestNotFound = communication.NewError(communication.ErrNotFound, "Leave request not found")
	// ErrAttendanceAlreadyMarked an attendance record exists for the current day
	ErrAttendanceAlreadyMarked = communication.NewError(communication.ErrConflict, "Attendance has already been marked for today")
	// ErrLeaveRequestNotPending the leave request was already decided on
	ErrLeaveRequestNotPending = communication.NewError(communication.ErrConflict, "Only pending leave requests can be deleted")
)

func validationError(message string) error {
	return communication.NewError(communication.ErrValidation, message)
}
