package domain

// Distance is the outcome of a route-distance computation. An unavailable
// distance carries the reason instead of a sentinel value, so failed
// computations can never leak into sums.
type Distance struct {
	Km     float64 `json:"km"`
	Reason string  `json:"reason,omitempty"`
	ok     bool
}

// DistanceKm wraps a successfully computed distance in kilometers.
func DistanceKm(km float64) Distance {
	return Distance{Km: km, ok: true}
}

// DistanceUnavailable marks a computation that did not succeed.
func DistanceUnavailable(reason string) Distance {
	return Distance{Reason: reason}
}

// Available reports whether the distance was computed.
func (d Distance) Available() bool {
	return d.ok
}
