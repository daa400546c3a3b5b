package constants

// NATS Subjects
const (
	// Location ingest
	SubjectLocationUpdate = "location.update"

	// Journey lifecycle events
	SubjectJourneyStarted   = "journey.started"
	SubjectJourneyCompleted = "journey.completed"
	SubjectJourneyCancelled = "journey.cancelled"

	// Push notification requests, one subject per notification kind:
	// notify.push.{kind}
	SubjectNotifyPushPrefix = "notify.push."
)
