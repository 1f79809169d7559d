package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Failed to fetch stock data: Internal Server Error"`
	ErrorDetails string    `json:"error,omitempty" example:"returns api: Failed to fetch stock data: Internal Server Error (status 500)"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error makes ErrorResponse usable as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
