// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
//
// Input DTOs carry `validate` tags; the delivery layer normalizes and validates
// them before any usecase runs, so usecases never see malformed input.
package usecase

import "strings"

// Normalizer is implemented by inputs that clean themselves up before validation.
type Normalizer interface {
	Normalize()
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
