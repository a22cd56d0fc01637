package communication

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vetcare-app/vetcare-backend/pkg/logger"
)

// ResponseManager handles errors that have to be returned to the user
type ResponseManager struct {
	Logger logger.Interface
	// HideInternalErrors replaces the message of 5xx responses with a generic one
	HideInternalErrors bool
}

const internalErrorMessage = "Internal server error"

// RespondWithError takes several arguments to return an error to the user and logs the error as well
func (r *ResponseManager) RespondWithError(writer http.ResponseWriter, status int, message string, err error) {
	if status >= 500 {
		r.Logger.Error(message, err)
		if r.HideInternalErrors {
			message = internalErrorMessage
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	binary, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		r.Logger.Error("Problem while marshalling error response", err)
		return
	}

	_, err = writer.Write(binary)
	if err != nil {
		r.Logger.Error("Problem writing error response", err)
	}
}

// RespondWithServiceError picks status and message from an error returned by a service
func (r *ResponseManager) RespondWithServiceError(writer http.ResponseWriter, err error) {
	status := StatusFor(err)

	var serviceError *Error
	if errors.As(err, &serviceError) {
		r.RespondWithError(writer, status, serviceError.Message, err)
		return
	}

	r.RespondWithError(writer, status, err.Error(), err)
}

// Respond takes an object and turns it into json and responds with it and a 200 HTTP status
func (r *ResponseManager) Respond(writer http.ResponseWriter, i interface{}) {
	r.RespondWithStatus(writer, i, http.StatusOK)
}

// RespondWithStatus responds with a specific status code
func (r *ResponseManager) RespondWithStatus(writer http.ResponseWriter, i interface{}, status int) {
	binary, err := json.Marshal(i)
	if err != nil {
		r.RespondWithError(writer, http.StatusInternalServerError,
			"Problem while marshalling response into json", err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, err = writer.Write(binary)
	if err != nil {
		r.Logger.Error("Problem writing response", err)
	}
}

// RespondWithMessage responds with a {"message": ...} body
func (r *ResponseManager) RespondWithMessage(writer http.ResponseWriter, message string) {
	r.Respond(writer, map[string]string{"message": message})
}
