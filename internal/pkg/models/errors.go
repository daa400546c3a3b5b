package models

import "errors"

var (
	// ErrJourneyNotFound is returned when a referenced journey does not exist
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrLocationUnavailable is returned when no usable location can be
	// supplied for a user or a referenced place
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrTrackingActive is returned when tracking is started twice for the
	// same journey
	ErrTrackingActive = errors.New("journey is already being tracked")
)
