package service

import "errors"

var (
	// Organization errors
	ErrOrgNotFound  = errors.New("organization not found")
	ErrOrgNameShort = errors.New("organization name must be at least 2 characters")
	ErrSlugTaken    = errors.New("organization slug already exists")
	ErrInvalidRole  = errors.New("invalid member role")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// API key errors
	ErrAPIKeyNotFound = errors.New("api key not found")
	ErrAPIKeyRevoked  = errors.New("api key is inactive")
	ErrAPIKeyExpired  = errors.New("api key is expired")
	ErrMissingScope   = errors.New("api key is missing the required scope")

	// Scoring errors
	ErrScoringNotFound = errors.New("scoring request not found")
	ErrSubjectRequired = errors.New("subject_phone ou subject_name est requis")
)
