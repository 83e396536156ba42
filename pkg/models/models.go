package models

import (
	"time"
)

// TimestampLayout is the wire format for every timestamp the daemon emits.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type RomanNumeral struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// ErrorDetails is the error payload of every non-2xx response.
//
// ErrorCode values:
//
//	0: unexpected failure while handling the request
//	1: query is empty or only contains whitespace
//	2: query is not a valid integer
//	3: query is outside the supported range [1,3999]
type ErrorDetails struct {
	Timestamp string `json:"timestamp"`
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	Details   string `json:"details"`
}

type HealthStatus struct {
	Status string `json:"status"`
}

func NewErrorDetails(now time.Time, code int, message, details string) ErrorDetails {
	return ErrorDetails{
		Timestamp: FormatTimestamp(now),
		ErrorCode: code,
		Message:   message,
		Details:   details,
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func RequestDetails(path string) string {
	if path == "" {
		path = "/"
	}
	return "uri=" + path
}
