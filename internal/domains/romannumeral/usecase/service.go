package usecase

import (
	"romannumeral/go-backend/internal/domains/romannumeral/model"
	"romannumeral/go-backend/internal/domains/romannumeral/policy"
)

// Convert validates raw and encodes it. It never panics for input that
// fails validation; those come back as a Failure.
func Convert(raw string) model.ConversionResult {
	n, err := policy.ValidateQuery(raw)
	if err != nil {
		kind := policy.KindOf(err)
		return model.Failed(raw, kind, policy.FailureMessage(raw, kind))
	}
	return model.Success(raw, policy.Encode(n))
}

// Service exposes Convert behind a value that can be injected into adapters.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Convert(raw string) model.ConversionResult {
	return Convert(raw)
}
