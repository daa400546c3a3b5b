package models

import (
	"time"

	"github.com/google/uuid"
)

// JourneyStatus represents the status of a journey
type JourneyStatus string

const (
	JourneyStatusPlanning   JourneyStatus = "planning"
	JourneyStatusInProgress JourneyStatus = "in_progress"
	JourneyStatusCompleted  JourneyStatus = "completed"
	JourneyStatusCancelled  JourneyStatus = "cancelled"
)

// LegStatus represents the status of a single journey leg
type LegStatus string

const (
	LegStatusPending    LegStatus = "pending"
	LegStatusInProgress LegStatus = "in_progress"
	LegStatusCompleted  LegStatus = "completed"
)

// TransportMode identifies the vehicle type for a leg
type TransportMode string

const (
	TransportModeBus       TransportMode = "bus"
	TransportModeBRT       TransportMode = "brt"
	TransportModeDanfo     TransportMode = "danfo"
	TransportModeKekeNapep TransportMode = "keke_napep"
	TransportModeOkada     TransportMode = "okada"
	TransportModeTaxi      TransportMode = "taxi"
	TransportModeFerry     TransportMode = "ferry"
)

// LegFlag identifies a one-shot notification flag on a leg.
// Flags are monotonic: once set they are never cleared within a journey.
type LegFlag string

const (
	FlagTransferAlertSent    LegFlag = "transfer_alert_sent"
	FlagTransferImminentSent LegFlag = "transfer_imminent_sent"
	FlagDestinationAlertSent LegFlag = "destination_alert_sent"
)

// Stop is an intermediate stop on a leg's segment. Coordinates may be
// carried inline or referenced through a location id; either may be absent.
type Stop struct {
	Name       string     `json:"name" db:"name"`
	LocationID *uuid.UUID `json:"location_id,omitempty" db:"location_id"`
	Latitude   *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64   `json:"longitude,omitempty" db:"longitude"`
	Position   int        `json:"position" db:"position"`
}

// Segment is the geometric definition of a leg: boarding point, drop point
// and the ordered stops in between.
type Segment struct {
	StartName      string  `json:"start_name" db:"start_name"`
	StartLatitude  float64 `json:"start_latitude" db:"start_latitude"`
	StartLongitude float64 `json:"start_longitude" db:"start_longitude"`
	EndName        string  `json:"end_name" db:"end_name"`
	EndLatitude    float64 `json:"end_latitude" db:"end_latitude"`
	EndLongitude   float64 `json:"end_longitude" db:"end_longitude"`
	Stops          []Stop  `json:"stops,omitempty"`
}

// JourneyLeg is one single-vehicle segment of a journey, bounded by a start
// and end transfer point.
type JourneyLeg struct {
	LegID            uuid.UUID     `json:"leg_id" db:"leg_id"`
	JourneyID        uuid.UUID     `json:"journey_id" db:"journey_id"`
	Position         int           `json:"position" db:"position"`
	Mode             TransportMode `json:"mode" db:"mode"`
	FareMin          float64       `json:"fare_min" db:"fare_min"`
	FareMax          float64       `json:"fare_max" db:"fare_max"`
	EstimatedMinutes int           `json:"estimated_minutes" db:"estimated_minutes"`
	Segment          Segment       `json:"segment"`
	Status           LegStatus     `json:"status" db:"status"`

	TransferAlertSent    bool `json:"transfer_alert_sent" db:"transfer_alert_sent"`
	TransferImminentSent bool `json:"transfer_imminent_sent" db:"transfer_imminent_sent"`
	DestinationAlertSent bool `json:"destination_alert_sent" db:"destination_alert_sent"`

	StartedAt   *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// FareMidpoint returns the midpoint of the leg's fare range.
func (l *JourneyLeg) FareMidpoint() float64 {
	return (l.FareMin + l.FareMax) / 2
}

// Journey is one user's traversal of a planned multi-leg route. Legs are
// ordered and contiguous: leg[i]'s drop point is leg[i+1]'s boarding point.
type Journey struct {
	JourneyID            uuid.UUID     `json:"journey_id" db:"journey_id"`
	UserID               uuid.UUID     `json:"user_id" db:"user_id"`
	Status               JourneyStatus `json:"status" db:"status"`
	OriginName           string        `json:"origin_name" db:"origin_name"`
	OriginLatitude       float64       `json:"origin_latitude" db:"origin_latitude"`
	OriginLongitude      float64       `json:"origin_longitude" db:"origin_longitude"`
	DestinationName      string        `json:"destination_name" db:"destination_name"`
	DestinationLatitude  float64       `json:"destination_latitude" db:"destination_latitude"`
	DestinationLongitude float64       `json:"destination_longitude" db:"destination_longitude"`
	DestinationLandmark  string        `json:"destination_landmark,omitempty" db:"destination_landmark"`
	Legs                 []*JourneyLeg `json:"legs,omitempty"`
	StartedAt            *time.Time    `json:"started_at,omitempty" db:"started_at"`
	EndedAt              *time.Time    `json:"ended_at,omitempty" db:"ended_at"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
}

// TransferCount returns the number of vehicle changes on the journey.
func (j *Journey) TransferCount() int {
	if len(j.Legs) == 0 {
		return 0
	}
	return len(j.Legs) - 1
}

// CurrentLegIndex returns the index of the leg currently in progress,
// or -1 if no leg is in progress.
func (j *Journey) CurrentLegIndex() int {
	for i, leg := range j.Legs {
		if leg.Status == LegStatusInProgress {
			return i
		}
	}
	return -1
}

// ProgressPoint is a derived proximity reading against a named point on the
// route: the distance from the traveler and the estimated minutes to reach it.
type ProgressPoint struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
	ETAMinutes     int     `json:"eta_minutes"`
}

// JourneyProgress is the per-cycle snapshot computed from the traveler's
// current location and the in-progress leg. It is transient and never stored.
type JourneyProgress struct {
	NextStop         *ProgressPoint `json:"next_stop,omitempty"`
	UpcomingTransfer *ProgressPoint `json:"upcoming_transfer,omitempty"`
}
