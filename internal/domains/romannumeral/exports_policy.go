package romannumeral

import (
	romanmodel "romannumeral/go-backend/internal/domains/romannumeral/model"
	romanpolicy "romannumeral/go-backend/internal/domains/romannumeral/policy"
)

type ErrorKind = romanmodel.ErrorKind

const (
	KindUnexpected       = romanmodel.KindUnexpected
	KindMissingInput     = romanmodel.KindMissingInput
	KindMalformedInteger = romanmodel.KindMalformedInteger
	KindOutOfRange       = romanmodel.KindOutOfRange

	MinValue = romanpolicy.MinValue
	MaxValue = romanpolicy.MaxValue
)

var (
	ErrMissingInput     = romanpolicy.ErrMissingInput
	ErrMalformedInteger = romanpolicy.ErrMalformedInteger
	ErrOutOfRange       = romanpolicy.ErrOutOfRange
)

func ValidateQuery(raw string) (int, error) {
	return romanpolicy.ValidateQuery(raw)
}

func Encode(n int) string {
	return romanpolicy.Encode(n)
}

func KindOf(err error) ErrorKind {
	return romanpolicy.KindOf(err)
}
