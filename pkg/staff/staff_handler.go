package staff

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vetcare-app/vetcare-backend/pkg/auth"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
)

// Handler handles all staff self-service API calls
type Handler struct {
	Service         *Service
	Logger          logger.Interface
	ResponseManager *communication.ResponseManager
}

// ProfileGet is the route for getting identity and staff record of the caller
func (handler *Handler) ProfileGet(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.Service.GetProfile(request.Context(), auth.UserID(request))
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, profile)
}

// ProfileUpdate is the route for updating contact fields and availability
func (handler *Handler) ProfileUpdate(writer http.ResponseWriter, request *http.Request) {
	patch := ProfilePatch{}

	err := json.NewDecoder(request.Body).Decode(&patch)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	update, err := handler.Service.UpdateProfile(request.Context(), auth.UserID(request), patch)
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, struct {
		Message string `json:"message"`
		*ProfileUpdate
	}{"Profile updated successfully", update})
}

// TaskList is the route for listing the caller's tasks
func (handler *Handler) TaskList(writer http.ResponseWriter, request *http.Request) {
	tasks, err := handler.Service.ListTasks(request.Context(), auth.UserID(request))
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, tasks)
}

// TaskComplete is the route for marking a task as completed
func (handler *Handler) TaskComplete(writer http.ResponseWriter, request *http.Request) {
	taskID := mux.Vars(request)["taskId"]

	task, err := handler.Service.CompleteTask(request.Context(), auth.UserID(request), taskID)
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, map[string]interface{}{
		"message": "Task marked as completed",
		"task":    task,
	})
}

// LeaveRequestAdd is the route for submitting a leave request
func (handler *Handler) LeaveRequestAdd(writer http.ResponseWriter, request *http.Request) {
	input := LeaveRequestInput{}

	err := json.NewDecoder(request.Body).Decode(&input)
	if err != nil {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	leaveRequest, err := handler.Service.SubmitLeaveRequest(request.Context(), auth.UserID(request), input)
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithStatus(writer, map[string]interface{}{
		"message":      "Leave request submitted",
		"leaveRequest": leaveRequest,
	}, http.StatusCreated)
}

// LeaveRequestList is the route for listing the caller's leave requests with their status
func (handler *Handler) LeaveRequestList(writer http.ResponseWriter, request *http.Request) {
	leaveRequests, err := handler.Service.ListLeaveRequests(request.Context(), auth.UserID(request))
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, leaveRequests)
}

// LeaveRequestDelete is the route for withdrawing a pending leave request
func (handler *Handler) LeaveRequestDelete(writer http.ResponseWriter, request *http.Request) {
	requestID := mux.Vars(request)["requestId"]

	err := handler.Service.DeleteLeaveRequest(request.Context(), auth.UserID(request), requestID)
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.RespondWithMessage(writer, "Leave request deleted successfully")
}

// LeaveBalanceGet is the route for the remaining leave days
func (handler *Handler) LeaveBalanceGet(writer http.ResponseWriter, request *http.Request) {
	balance, err := handler.Service.GetLeaveBalance(request.Context(), auth.UserID(request))
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, balance)
}

// AttendanceMark is the route for marking today's attendance
func (handler *Handler) AttendanceMark(writer http.ResponseWriter, request *http.Request) {
	input := AttendanceInput{}

	// both times are optional, so no body at all marks attendance without times
	err := json.NewDecoder(request.Body).Decode(&input)
	if err != nil && err != io.EOF {
		handler.ResponseManager.RespondWithError(writer, http.StatusBadRequest, "Wrong format", err)
		return
	}

	attendance, err := handler.Service.MarkAttendance(request.Context(), auth.UserID(request), input)
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, map[string]interface{}{
		"message":    "Attendance marked successfully",
		"attendance": attendance,
	})
}

// AttendanceList is the route for listing the caller's attendance
func (handler *Handler) AttendanceList(writer http.ResponseWriter, request *http.Request) {
	attendance, err := handler.Service.ListAttendance(request.Context(), auth.UserID(request))
	if err != nil {
		handler.ResponseManager.RespondWithServiceError(writer, err)
		return
	}

	handler.ResponseManager.Respond(writer, attendance)
}
