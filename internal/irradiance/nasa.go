package irradiance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// NASAPowerBaseURL is the NASA POWER application endpoint serving the
// averaged downward shortwave irradiance parameter.
const NASAPowerBaseURL = "https://power.larc.nasa.gov/api/system/application/run.json"

// Averaging window requested from NASA POWER, multi-year daily values.
const (
	nasaWindowStart = "2020"
	nasaWindowEnd   = "2021"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common errors for the NASA POWER resolver.
var (
	ErrNASAEmptyWindow = errors.New("NASA POWER returned no usable samples in the averaging window")
)

// NASAPowerResolver resolves irradiance from the NASA POWER API. A
// single attempt is made per call, bounded by the client timeout; any
// failure is reported to the chain, which falls back locally. No
// retries: availability is preferred over freshness.
type NASAPowerResolver struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the NASA POWER API
	limiter *rate.Limiter // Rate limiter for the public API
	log     *slog.Logger  // Logger for logging operations
}

// nasaPowerResponse is the slice of the POWER payload this resolver
// reads: a parameter map of period key to irradiance sample, where
// missing samples are null.
type nasaPowerResponse struct {
	Properties struct {
		Parameter struct {
			Irradiance map[string]*float64 `json:"ALLSKY_SFC_SW_DWN"`
		} `json:"parameter"`
	} `json:"properties"`
}

// NewNASAPowerResolver creates a NASA POWER resolver with its own HTTP
// client bounded by the given timeout.
func NewNASAPowerResolver(timeout time.Duration, rateLimit int, log *slog.Logger) *NASAPowerResolver {
	return &NASAPowerResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: NASAPowerBaseURL,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		log:     log,
	}
}

// NewNASAPowerResolverWithClient allows injecting a custom HTTP client
// and limiter. Useful for testing with mocked HTTP clients.
func NewNASAPowerResolverWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *NASAPowerResolver {
	return &NASAPowerResolver{
		client:  client,
		baseURL: NASAPowerBaseURL,
		limiter: limiter,
		log:     log,
	}
}

// Source reports the remote tag.
func (nr *NASAPowerResolver) Source() string { return SourceRemote }

// Resolve queries NASA POWER for the averaged all-sky surface shortwave
// downward irradiance at the coordinates and returns the arithmetic
// mean of all non-null samples in the window.
func (nr *NASAPowerResolver) Resolve(ctx context.Context, lat, lng float64) (float64, error) {
	if err := nr.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit exceeded: %w", err)
	}

	nr.log.DebugContext(ctx, "Resolving irradiance using NASA POWER", "lat", lat, "lng", lng)

	reqURL, err := url.Parse(nr.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("parameters", "ALLSKY_SFC_SW_DWN")
	query.Set("community", "RE")
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("start", nasaWindowStart)
	query.Set("end", nasaWindowEnd)
	query.Set("format", "JSON")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := nr.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute NASA POWER request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		nr.log.WarnContext(ctx, "NASA POWER API error", "status", resp.StatusCode, "body", string(body))
		return 0, fmt.Errorf("NASA POWER returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var result nasaPowerResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to decode NASA POWER response: %w", err)
	}

	var sum float64
	var count int
	for _, sample := range result.Properties.Parameter.Irradiance {
		if sample == nil {
			continue
		}
		sum += *sample
		count++
	}
	if count == 0 {
		return 0, ErrNASAEmptyWindow
	}

	mean := sum / float64(count)
	nr.log.InfoContext(ctx, "NASA POWER resolved irradiance",
		"lat", lat, "lng", lng, "irradiance", mean, "samples", count)

	return mean, nil
}
