package constants

// NSQ topics
const (
	// Telemetry Service
	TopicOffenceDetected = "offence.detected"
	TopicVehicleLocation = "vehicle.location"

	// Dispatch Service
	TopicBookingEvents = "booking.events"
)
