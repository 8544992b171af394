// Package response provides shared JSON response helpers for HTTP handlers.
//
// Every response carries an embedded result code that may differ from the
// transport status: validation failures are reported as transport 200 with
// an embedded 4xx code, which existing callers branch on.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard API response envelope.
type Envelope struct {
	Result Result `json:"result"`
}

// Result is the embedded outcome of an API call.
type Result struct {
	Code    int    `json:"code"    example:"200"`
	Message string `json:"message" example:"OK"`
	Details string `json:"details" example:"File successfully uploaded to device1/config.txt"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Write sends result with the given transport status.
func Write(w http.ResponseWriter, status int, result Result) {
	JSON(w, status, Envelope{Result: result})
}

// OK builds an embedded 200 result.
func OK(details string) Result {
	return Result{Code: http.StatusOK, Message: "OK", Details: details}
}

// Unprocessable builds an embedded 422 result.
func Unprocessable(details string) Result {
	return Result{Code: http.StatusUnprocessableEntity, Message: "Unprocessable Content", Details: details}
}

// BadRequest builds an embedded 400 result.
func BadRequest(details string) Result {
	return Result{Code: http.StatusBadRequest, Message: "Bad request", Details: details}
}

// TooLarge builds an embedded 413 result.
func TooLarge(details string) Result {
	return Result{Code: http.StatusRequestEntityTooLarge, Message: "Content Too Large", Details: details}
}

// InternalError builds an embedded 500 result.
func InternalError(details string) Result {
	return Result{Code: http.StatusInternalServerError, Message: "Internal Server Error", Details: details}
}
