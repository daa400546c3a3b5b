package models

import "time"

// Location represents a geographical position with an optional address
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Address   string    `json:"address,omitempty" db:"address"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationUpdate represents a location update event for a user
type LocationUpdate struct {
	UserID    string    `json:"user_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Place is a named, geocoded point of interest (motor park, bus stop,
// junction, landmark) referenced by route segments.
type Place struct {
	PlaceID   string   `json:"place_id" db:"place_id"`
	Name      string   `json:"name" db:"name"`
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
	Landmark  string   `json:"landmark,omitempty" db:"landmark"`
	City      string   `json:"city,omitempty" db:"city"`
	State     string   `json:"state,omitempty" db:"state"`
}
