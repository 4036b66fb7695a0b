package matching

import "math"

// earthRadiusKM is the mean radius used for great-circle distances.
const earthRadiusKM = 6371.0

// Coordinate is a geographic point. Presence is explicit: callers pass nil
// when a job or laborer has no location set, never a zero-valued struct.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate returns nil when either component is absent. A component of
// exactly 0.0 is also treated as absent, matching the storage convention
// where unset coordinates may be persisted as zero.
func NewCoordinate(lat, lon *float64) *Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	if *lat == 0 || *lon == 0 {
		return nil
	}
	return &Coordinate{Latitude: *lat, Longitude: *lon}
}

// Distance returns the great-circle distance in kilometers between two points
// using the Haversine formula. A nil argument yields +Inf so that any
// threshold comparison downstream fails closed.
func Distance(a, b *Coordinate) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}

	lat1 := degToRad(a.Latitude)
	lon1 := degToRad(a.Longitude)
	lat2 := degToRad(b.Latitude)
	lon2 := degToRad(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	return c * earthRadiusKM
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
