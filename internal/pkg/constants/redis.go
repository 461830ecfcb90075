package constants

// Redis key formats
const (
	// Fleet Service
	KeyVehicleLocation = "vehicle:location:%s" // Format: vehicle:location:{vehicle_id}
	KeyVehicleGeo      = "vehicles:geo"        // GeoHash set of all vehicle locations

	// Dispatch Service
	KeyActiveBooking = "booking:active:%s" // Format: booking:active:{vehicle_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldSpeed     = "speed"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
