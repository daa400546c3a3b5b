package models

// NotificationKind discriminates the notification payload types emitted by
// the journey tracker.
type NotificationKind string

const (
	NotificationJourneyStart     NotificationKind = "journey_start"
	NotificationApproachingStop  NotificationKind = "approaching_stop"
	NotificationTransferAlert    NotificationKind = "transfer_alert"
	NotificationTransferImminent NotificationKind = "transfer_imminent"
	NotificationTransferComplete NotificationKind = "transfer_complete"
	NotificationDestinationAlert NotificationKind = "destination_alert"
	NotificationJourneyComplete  NotificationKind = "journey_complete"
	NotificationRatingRequest    NotificationKind = "rating_request"
	NotificationJourneyStopped   NotificationKind = "journey_stopped"
)

// NotificationPayload is the closed set of typed payloads a notification can
// carry. Each payload type reports its own kind so the wire envelope always
// carries the right discriminator for the fields present.
type NotificationPayload interface {
	Kind() NotificationKind
}

// Notification is a structured message addressed to a user. Delivery
// (push, email, retries) belongs to the downstream notifier service.
type Notification struct {
	UserID  string              `json:"user_id"`
	Title   string              `json:"title"`
	Body    string              `json:"body"`
	Payload NotificationPayload `json:"payload"`
}

// Kind returns the discriminator of the carried payload.
func (n *Notification) Kind() NotificationKind {
	if n.Payload == nil {
		return ""
	}
	return n.Payload.Kind()
}

// JourneyStartPayload announces the start of tracking for a journey.
type JourneyStartPayload struct {
	JourneyID     string        `json:"journey_id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	VehicleType   TransportMode `json:"vehicle_type"`
	FareMin       float64       `json:"fare_min"`
	FareMax       float64       `json:"fare_max"`
	TransferCount int           `json:"transfer_count"`
}

func (JourneyStartPayload) Kind() NotificationKind { return NotificationJourneyStart }

// ApproachingStopPayload reports proximity to the next intermediate stop.
type ApproachingStopPayload struct {
	JourneyID      string  `json:"journey_id"`
	StopName       string  `json:"stop_name"`
	DistanceMeters float64 `json:"distance_meters"`
	ETAMinutes     int     `json:"eta_minutes"`
}

func (ApproachingStopPayload) Kind() NotificationKind { return NotificationApproachingStop }

// TransferAlertPayload warns that the current leg's drop point is coming up.
type TransferAlertPayload struct {
	JourneyID       string        `json:"journey_id"`
	DropLocation    string        `json:"drop_location"`
	ETAMinutes      int           `json:"eta_minutes"`
	NextVehicleType TransportMode `json:"next_vehicle_type"`
	NextFareMin     float64       `json:"next_fare_min"`
	NextFareMax     float64       `json:"next_fare_max"`
}

func (TransferAlertPayload) Kind() NotificationKind { return NotificationTransferAlert }

// TransferImminentPayload tells the traveler to get ready to alight.
type TransferImminentPayload struct {
	JourneyID        string        `json:"journey_id"`
	NextVehicleType  TransportMode `json:"next_vehicle_type"`
	NextDropLocation string        `json:"next_drop_location"`
}

func (TransferImminentPayload) Kind() NotificationKind { return NotificationTransferImminent }

// TransferCompletePayload confirms a leg change and introduces the next leg.
type TransferCompletePayload struct {
	JourneyID        string        `json:"journey_id"`
	TransferLocation string        `json:"transfer_location"`
	NextVehicleType  TransportMode `json:"next_vehicle_type"`
	NextFareMin      float64       `json:"next_fare_min"`
	NextFareMax      float64       `json:"next_fare_max"`
	RemainingMinutes int           `json:"remaining_minutes"`
}

func (TransferCompletePayload) Kind() NotificationKind { return NotificationTransferComplete }

// DestinationAlertPayload warns that the final destination is near.
type DestinationAlertPayload struct {
	JourneyID  string `json:"journey_id"`
	ETAMinutes int    `json:"eta_minutes"`
	Landmark   string `json:"landmark,omitempty"`
}

func (DestinationAlertPayload) Kind() NotificationKind { return NotificationDestinationAlert }

// JourneyCompletePayload summarizes a finished journey.
type JourneyCompletePayload struct {
	JourneyID       string  `json:"journey_id"`
	Destination     string  `json:"destination"`
	TotalFare       float64 `json:"total_fare"`
	DurationMinutes int     `json:"duration_minutes"`
	TransferCount   int     `json:"transfer_count"`
}

func (JourneyCompletePayload) Kind() NotificationKind { return NotificationJourneyComplete }

// RatingRequestPayload asks the traveler to rate the completed journey.
type RatingRequestPayload struct {
	JourneyID string `json:"journey_id"`
}

func (RatingRequestPayload) Kind() NotificationKind { return NotificationRatingRequest }

// JourneyStoppedPayload confirms that tracking was stopped by the traveler.
type JourneyStoppedPayload struct {
	JourneyID string `json:"journey_id"`
}

func (JourneyStoppedPayload) Kind() NotificationKind { return NotificationJourneyStopped }
