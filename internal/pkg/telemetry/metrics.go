package telemetry

// SLI metric names used for instrumentation.
const (
	// Latency
	MetricAPILatencyP50 = "api.latency.p50"
	MetricAPILatencyP95 = "api.latency.p95"
	MetricAPILatencyP99 = "api.latency.p99"

	// Throughput
	MetricRequestsPerSec = "api.requests_per_second"

	// External dependency
	MetricDirectionsLatency = "directions.request_latency"

	// Availability
	MetricUptime = "service.uptime_percentage"

	// Business
	MetricRoutesComputed   = "business.routes_computed"
	MetricDistanceLogged   = "business.distance_km_logged"
	MetricDigestsDelivered = "business.digests_delivered"
)
