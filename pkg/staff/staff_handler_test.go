package staff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/vetcare-app/vetcare-backend/pkg/auth"
	"github.com/vetcare-app/vetcare-backend/pkg/auth/jwt"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "secret"

type apiFixture struct {
	*fixture
	router *mux.Router
	token  string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := newFixture(t)

	responseManager := &communication.ResponseManager{Logger: logger.Discard()}
	handler := Handler{Service: f.service, Logger: logger.Discard(), ResponseManager: responseManager}
	authentication := &auth.AuthenticationMiddleware{ResponseManager: responseManager, Secret: testSecret}

	router := mux.NewRouter()
	handler.RegisterRoutes(router, authentication)

	token, err := jwt.Sign(jwt.New(f.user.ID.Hex(), jwt.TokenTypeAccess, []string{auth.RoleStaff}, time.Hour), testSecret)
	if err != nil {
		t.Fatal(err)
	}

	return &apiFixture{fixture: f, router: router, token: token}
}

func (f *apiFixture) do(t *testing.T, method string, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Authorization", "Bearer "+f.token)
	recorder := httptest.NewRecorder()

	f.router.ServeHTTP(recorder, request)

	decoded := map[string]interface{}{}
	if strings.HasPrefix(strings.TrimSpace(recorder.Body.String()), "{") {
		err := json.Unmarshal(recorder.Body.Bytes(), &decoded)
		if err != nil {
			t.Fatalf("response is no json object: %s", recorder.Body.String())
		}
	}

	return recorder, decoded
}

func TestHandler_LeaveRequestAdd(t *testing.T) {
	f := newAPIFixture(t)

	recorder, body := f.do(t, http.MethodPost, "/leave-request",
		`{"leaveType":"sick","startDate":"2024-01-10","endDate":"2024-01-10","option":"full-day","noOfDays":1,"reason":"flu"}`)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if body["message"] != "Leave request submitted" {
		t.Errorf("message = %v", body["message"])
	}

	leaveRequest, ok := body["leaveRequest"].(map[string]interface{})
	if !ok {
		t.Fatalf("leaveRequest missing in %v", body)
	}
	if leaveRequest["status"] != "pending" {
		t.Errorf("status = %v, want pending", leaveRequest["status"])
	}
	if leaveRequest["startDate"] != "2024-01-10T00:00:00.000Z" {
		t.Errorf("startDate = %v", leaveRequest["startDate"])
	}
	if leaveRequest["_id"] == "" || leaveRequest["_id"] == nil {
		t.Error("leave request has no id")
	}

	recorder, _ = f.do(t, http.MethodGet, "/leave-status", "")
	var listed []map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &listed)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0]["_id"] != leaveRequest["_id"] || listed[0]["reason"] != "flu" {
		t.Errorf("listed = %v", listed)
	}
}

func TestHandler_AttendanceMark(t *testing.T) {
	f := newAPIFixture(t)

	recorder, body := f.do(t, http.MethodPost, "/attendance", `{"checkIn":"09:00","checkOut":"17:30"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	attendance := body["attendance"].(map[string]interface{})
	if attendance["checkIn"] != "09:00" || attendance["checkOut"] != "17:30" {
		t.Errorf("attendance = %v", attendance)
	}
	if body["message"] != "Attendance marked successfully" {
		t.Errorf("message = %v", body["message"])
	}

	recorder, body = f.do(t, http.MethodPost, "/attendance", `{"checkIn":"09:00","checkOut":"17:30"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
	if body["message"] != "Attendance has already been marked for today" {
		t.Errorf("message = %v", body["message"])
	}

	recorder, _ = f.do(t, http.MethodGet, "/attendance", "")
	var listed []map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &listed)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0]["checkIn"] != "09:00" || listed[0]["date"] != "2024-01-10T00:00:00.000Z" {
		t.Errorf("listed = %v", listed)
	}
}

func TestHandler_AttendanceMark_EmptyBody(t *testing.T) {
	f := newAPIFixture(t)

	recorder, body := f.do(t, http.MethodPost, "/attendance", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if body["message"] != "Attendance marked successfully" {
		t.Errorf("message = %v", body["message"])
	}

	attendance := body["attendance"].(map[string]interface{})
	if attendance["checkIn"] != nil || attendance["checkOut"] != nil {
		t.Errorf("attendance = %v, want no times", attendance)
	}
}

func TestHandler_TaskComplete(t *testing.T) {
	f := newAPIFixture(t)
	task := f.addTask(t, "Walk the boarders")

	recorder, body := f.do(t, http.MethodPut, "/tasks/"+task.ID.Hex()+"/complete", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if body["message"] != "Task marked as completed" {
		t.Errorf("message = %v", body["message"])
	}

	completed := body["task"].(map[string]interface{})
	if completed["status"] != "completed" || completed["completedDate"] != "2024-01-10T08:30:00.000Z" ||
		completed["completedBy"] != f.user.ID.Hex() {
		t.Errorf("task = %v", completed)
	}

	recorder, body = f.do(t, http.MethodPut, "/tasks/"+primitive.NewObjectID().Hex()+"/complete", "")
	if recorder.Code != http.StatusNotFound || body["message"] != "Task not found" {
		t.Errorf("unknown task: %d %v", recorder.Code, body)
	}
}

func TestHandler_ProfileUpdate(t *testing.T) {
	f := newAPIFixture(t)
	f.record().Availability = AvailabilityUnavailable

	recorder, body := f.do(t, http.MethodPut, "/profile", `{"phone":"0771234567"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if body["message"] != "Profile updated successfully" {
		t.Errorf("message = %v", body["message"])
	}

	updatedUser := body["updatedUser"].(map[string]interface{})
	updatedStaff := body["updatedStaff"].(map[string]interface{})
	if updatedUser["phone"] != "0771234567" {
		t.Errorf("updatedUser = %v", updatedUser)
	}
	if updatedStaff["availability"] != "unavailable" {
		t.Errorf("updatedStaff = %v, availability must stay unchanged", updatedStaff)
	}

	recorder, body = f.do(t, http.MethodGet, "/profile", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	user := body["user"].(map[string]interface{})
	if user["phone"] != "0771234567" {
		t.Errorf("user = %v", user)
	}
	if _, ok := user["password"]; ok {
		t.Error("profile must not expose the password")
	}
}

func TestHandler_ProfileUpdate_EmptyFields(t *testing.T) {
	f := newAPIFixture(t)
	f.record().Availability = AvailabilityUnavailable

	recorder, body := f.do(t, http.MethodPut, "/profile", `{"phone":"","availability":""}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	updatedUser := body["updatedUser"].(map[string]interface{})
	updatedStaff := body["updatedStaff"].(map[string]interface{})
	if updatedUser["phone"] != "" || updatedStaff["availability"] != "unavailable" {
		t.Errorf("updatedUser = %v updatedStaff = %v", updatedUser, updatedStaff)
	}
}

func TestHandler_Errors(t *testing.T) {
	f := newAPIFixture(t)
	approved := LeaveRequest{ID: primitive.NewObjectID(), LeaveType: LeaveTypeAnnual, NoOfDays: 3, Status: LeaveStatusApproved}
	f.record().LeaveRequests = []LeaveRequest{approved}

	var errorTests = []struct {
		name        string
		method      string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"malformed json", http.MethodPost, "/attendance", `{"checkIn":`, http.StatusBadRequest, "Wrong format"},
		{"invalid availability", http.MethodPut, "/profile", `{"availability":"away"}`, http.StatusBadRequest,
			"availability must be one of: available, unavailable"},
		{"missing leave type", http.MethodPost, "/leave-request",
			`{"startDate":"2024-01-10","endDate":"2024-01-10","option":"full-day","noOfDays":1}`,
			http.StatusBadRequest, "leaveType is required"},
		{"delete unknown leave request", http.MethodDelete, "/leave-request/" + primitive.NewObjectID().Hex(), "",
			http.StatusNotFound, "Leave request not found"},
		{"delete approved leave request", http.MethodDelete, "/leave-request/" + approved.ID.Hex(), "",
			http.StatusBadRequest, "Only pending leave requests can be deleted"},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := f.do(t, tt.method, tt.path, tt.body)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestHandler_MissingStaffRecord(t *testing.T) {
	f := newAPIFixture(t)
	f.repository.Records = nil

	for _, path := range []string{"/tasks", "/leave-status", "/attendance", "/leave-balance"} {
		recorder, body := f.do(t, http.MethodGet, path, "")
		if recorder.Code != http.StatusNotFound || body["message"] != "Staff data not found" {
			t.Errorf("%s: %d %v", path, recorder.Code, body)
		}
	}

	recorder, body := f.do(t, http.MethodGet, "/profile", "")
	if recorder.Code != http.StatusNotFound || body["message"] != "Staff profile not found" {
		t.Errorf("/profile: %d %v", recorder.Code, body)
	}
}

func TestHandler_RequiresStaffRole(t *testing.T) {
	f := newAPIFixture(t)

	token, err := jwt.Sign(jwt.New(f.user.ID.Hex(), jwt.TokenTypeAccess, []string{"customer"}, time.Hour), testSecret)
	if err != nil {
		t.Fatal(err)
	}

	request := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", recorder.Code)
	}

	request = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	recorder = httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", recorder.Code)
	}
}
