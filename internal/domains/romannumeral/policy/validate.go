package policy

import (
	"errors"
	"strconv"
	"strings"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
)

const (
	MinValue = 1
	MaxValue = 3999
)

var (
	ErrMissingInput     = errors.New("query value is missing or blank")
	ErrMalformedInteger = errors.New("query value is not a base-10 integer")
	ErrOutOfRange       = errors.New("query value is out of supported range")
)

// ValidateQuery runs blank check, strict parse and range check in that order
// and stops at the first failing step.
func ValidateQuery(raw string) (int, error) {
	if isBlank(raw) {
		return 0, ErrMissingInput
	}
	// 32-bit width: anything that does not fit is malformed, not out of range.
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, ErrMalformedInteger
	}
	n := int(parsed)
	if !InSupportedRange(n) {
		return 0, ErrOutOfRange
	}
	return n, nil
}

// isBlank treats ASCII space and control characters as blank. Unicode
// spaces such as U+00A0 are not blank and fail parsing instead.
func isBlank(raw string) bool {
	return strings.TrimFunc(raw, func(r rune) bool { return r <= ' ' }) == ""
}

func InSupportedRange(n int) bool {
	return n >= MinValue && n <= MaxValue
}

// KindOf maps policy errors onto the public error taxonomy.
func KindOf(err error) model.ErrorKind {
	var failure *model.Failure
	switch {
	case errors.Is(err, ErrMissingInput):
		return model.KindMissingInput
	case errors.Is(err, ErrMalformedInteger):
		return model.KindMalformedInteger
	case errors.Is(err, ErrOutOfRange):
		return model.KindOutOfRange
	case errors.As(err, &failure):
		return failure.Kind
	default:
		return model.KindUnexpected
	}
}
