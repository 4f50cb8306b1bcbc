// Package foursquare implements the place catalog client against the
// Foursquare Places API.
package foursquare

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bokitas/config"
	"bokitas/internal/domain/service"
	"bokitas/internal/errors"

	"golang.org/x/time/rate"
)

const (
	defaultTimeout    = 20 * time.Second
	defaultRPS        = 5
	defaultMaxRetries = 3

	// Fields requested from the place details endpoint; everything the
	// materializer needs and nothing more.
	placeFields = "fsq_id,name,location,latitude,longitude,geocodes,website,categories,photos"
)

// Client calls the Foursquare place details endpoint with client-side rate
// limiting and retries on transient upstream failures.
type Client struct {
	baseURL    string
	apiKey     string
	maxRetries int
	hc         *http.Client
	limiter    *rate.Limiter
}

// New is the constructor for Client.
func New(cfg *config.CatalogConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("catalog config is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("catalog API key is required")
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(rps)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		maxRetries: maxRetries,
		hc:         &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// placeResponse mirrors the place details payload.
type placeResponse struct {
	FsqID    string `json:"fsq_id"`
	Name     string `json:"name"`
	Location struct {
		FormattedAddress string `json:"formatted_address"`
		Address          string `json:"address"`
		Locality         string `json:"locality"`
		Region           string `json:"region"`
		Country          string `json:"country"`
	} `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geocodes  struct {
		Main struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"main"`
	} `json:"geocodes"`
	Website    string `json:"website"`
	Categories []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"categories"`
	Photos []struct {
		Prefix string `json:"prefix"`
		Suffix string `json:"suffix"`
	} `json:"photos"`
}

// FetchPlace retrieves the details of a place by its catalog identifier.
func (c *Client) FetchPlace(ctx context.Context, externalID string) (*service.PlaceDetails, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, service.ErrInvalidPlaceID
	}

	requestURL := c.baseURL + "/places/" + url.PathEscape(externalID) + "?fields=" + url.QueryEscape(placeFields)

	var payload placeResponse
	if err := c.get(ctx, requestURL, &payload); err != nil {
		return nil, err
	}

	return toPlaceDetails(externalID, &payload), nil
}

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After when
// provided.
func (c *Client) get(ctx context.Context, requestURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		// Build a fresh request each attempt.
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return errors.Wrap(err, "failed to build catalog request")
		}
		req.Header.Set("Authorization", c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if attempt < c.maxRetries && sleepCtx(ctx, backoff(attempt)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return errors.Wrap(err, "failed to decode catalog response")
			}

			return nil

		case http.StatusBadRequest:
			resp.Body.Close()

			return service.ErrInvalidPlaceID

		case http.StatusNotFound:
			resp.Body.Close()

			return service.ErrPlaceNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(attempt)
			}
			lastErr = errors.Errorf("catalog returned status %d", resp.StatusCode)
			if attempt < c.maxRetries && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return lastErr

		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()

			return errors.Errorf("catalog returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
	}

	return lastErr
}

// toPlaceDetails maps the raw payload to the domain's catalog view.
func toPlaceDetails(externalID string, payload *placeResponse) *service.PlaceDetails {
	details := &service.PlaceDetails{
		ExternalID:       externalID,
		Name:             payload.Name,
		FormattedAddress: payload.Location.FormattedAddress,
		AddressParts: []string{
			payload.Location.Address,
			payload.Location.Locality,
			payload.Location.Region,
			payload.Location.Country,
		},
		WebsiteURL: payload.Website,
	}

	if payload.Latitude != 0 || payload.Longitude != 0 {
		details.Location = &service.GeoPoint{
			Latitude:  payload.Latitude,
			Longitude: payload.Longitude,
		}
	}
	if payload.Geocodes.Main.Latitude != 0 || payload.Geocodes.Main.Longitude != 0 {
		details.Geocode = &service.GeoPoint{
			Latitude:  payload.Geocodes.Main.Latitude,
			Longitude: payload.Geocodes.Main.Longitude,
		}
	}

	for _, category := range payload.Categories {
		details.Categories = append(details.Categories, service.PlaceCategory{
			Code: category.ID,
			Name: category.Name,
		})
	}
	for _, photo := range payload.Photos {
		details.Photos = append(details.Photos, service.PlacePhoto{
			Prefix: photo.Prefix,
			Suffix: photo.Suffix,
		})
	}

	return details
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses the Retry-After header (seconds or HTTP-date). Returns 0
// if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// The base doubles each attempt (200ms, 400ms, 800ms...), with up to +50%
// random jitter to avoid thundering herds.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<attempt) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))

	return base + j
}
