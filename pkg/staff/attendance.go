package staff

import (
	"encoding/json"
	"time"

	"github.com/vetcare-app/vetcare-backend/pkg/date"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRecord is one check-in/check-out pair. There is at most one per calendar day.
type AttendanceRecord struct {
	ID       primitive.ObjectID `bson:"_id"`
	Date     time.Time          `bson:"date"`
	CheckIn  *time.Time         `bson:"checkIn"`
	CheckOut *time.Time         `bson:"checkOut"`
}

// MarshalJSON renders all timestamps as ISO-8601 strings, see AttendanceView for the HH:MM rendering
func (a AttendanceRecord) MarshalJSON() ([]byte, error) {
	type attendanceRecordView struct {
		ID       primitive.ObjectID `json:"_id"`
		Date     string             `json:"date"`
		CheckIn  *string            `json:"checkIn"`
		CheckOut *string            `json:"checkOut"`
	}

	view := attendanceRecordView{ID: a.ID, Date: date.FormatISO(a.Date)}
	if a.CheckIn != nil {
		checkIn := date.FormatISO(*a.CheckIn)
		view.CheckIn = &checkIn
	}
	if a.CheckOut != nil {
		checkOut := date.FormatISO(*a.CheckOut)
		view.CheckOut = &checkOut
	}

	return json.Marshal(view)
}

// AttendanceView is how attendance is returned by the attendance endpoints
type AttendanceView struct {
	ID       primitive.ObjectID `json:"_id"`
	Date     string             `json:"date"`
	CheckIn  *string            `json:"checkIn"`
	CheckOut *string            `json:"checkOut"`
}

// View renders the record with times of day as HH:MM in location
func (a AttendanceRecord) View(location *time.Location) AttendanceView {
	view := AttendanceView{ID: a.ID, Date: date.FormatISO(a.Date)}
	if a.CheckIn != nil {
		checkIn := date.FormatClock(*a.CheckIn, location)
		view.CheckIn = &checkIn
	}
	if a.CheckOut != nil {
		checkOut := date.FormatClock(*a.CheckOut, location)
		view.CheckOut = &checkOut
	}
	return view
}

// AttendanceInput is the body of an attendance submission
type AttendanceInput struct {
	CheckIn  string `json:"checkIn" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"checkOut" validate:"omitempty,datetime=15:04"`
}
