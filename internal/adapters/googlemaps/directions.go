package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/pkg/metrics"
)

// Client calls the Google Directions API to compute round-trip driving
// distances. A zero API key disables the client: every call returns an
// unavailable distance without touching the network.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	region   string
	http     *http.Client
}

type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Region   string
	Timeout  time.Duration
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://maps.googleapis.com/maps/api/directions/json"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		region:   cfg.Region,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// RouteDistance sums the leg distances of the optimized base -> waypoints ->
// base route. Failures are logged and folded into the Distance value.
func (c *Client) RouteDistance(ctx context.Context, base string, waypoints []string) domain.Distance {
	if c.apiKey == "" {
		return domain.DistanceUnavailable("api key not configured")
	}
	if len(waypoints) == 0 {
		return domain.DistanceUnavailable("no waypoints")
	}

	params := url.Values{}
	params.Set("origin", base)
	params.Set("destination", base)
	params.Set("mode", "driving")
	if c.language != "" {
		params.Set("language", c.language)
	}
	if c.region != "" {
		params.Set("region", c.region)
	}
	params.Set("waypoints", "optimize:true|"+strings.Join(waypoints, "|"))
	params.Set("key", c.apiKey)

	start := time.Now()
	dist, err := c.fetch(ctx, params)
	metrics.DirectionsDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Warn("directions request failed", "error", err)
		return domain.DistanceUnavailable(err.Error())
	}
	return dist
}

func (c *Client) fetch(ctx context.Context, params url.Values) (domain.Distance, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		metrics.DirectionsErrors.WithLabelValues("request").Inc()
		return domain.Distance{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.DirectionsErrors.WithLabelValues("transport").Inc()
		return domain.Distance{}, fmt.Errorf("directions call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.DirectionsErrors.WithLabelValues("http_status").Inc()
		return domain.Distance{}, fmt.Errorf("directions http status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.DirectionsErrors.WithLabelValues("decode").Inc()
		return domain.Distance{}, fmt.Errorf("decode response: %w", err)
	}

	if body.Status != "OK" || len(body.Routes) == 0 {
		metrics.DirectionsErrors.WithLabelValues("api_status").Inc()
		return domain.Distance{}, fmt.Errorf("directions status %q", body.Status)
	}

	var meters int64
	for _, leg := range body.Routes[0].Legs {
		meters += leg.Distance.Value
	}

	// Round half away from zero to one decimal place.
	km := math.Round(float64(meters)/100) / 10
	return domain.DistanceKm(km), nil
}
