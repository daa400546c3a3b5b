package constants

// Redis key formats
const (
	KeyUserLocation = "user:location:%s" // Format: user:location:{user_id}
	KeyUserGeo      = "users:geo"        // Geo set of last known user positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeoCell   = "cell"
)
