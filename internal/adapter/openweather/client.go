// Package openweather implements the weather sample source against the
// OpenWeatherMap current-weather and 5-day/3-hour forecast APIs.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/treehub/storm-monitor/internal/domain"
	"github.com/treehub/storm-monitor/internal/observability"
)

// Client fetches weather samples from OpenWeatherMap. All requests use
// imperial units (Fahrenheit, mph) and carry the configured bounded timeout.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. baseURL is the API root,
// e.g. "https://api.openweathermap.org/data/2.5".
func NewClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

// Current fetches the single current observation for a location.
func (c *Client) Current(ctx context.Context, loc domain.Location) (domain.WeatherSample, error) {
	var obs observation
	if err := c.doRequest(ctx, "weather", loc, nil, &obs); err != nil {
		return domain.WeatherSample{}, err
	}
	return toSample(loc, obs)
}

// Forecast fetches up to points forecast samples (3-hour cadence) for a
// location, in provider order.
func (c *Client) Forecast(ctx context.Context, loc domain.Location, points int) ([]domain.WeatherSample, error) {
	extra := url.Values{"cnt": {strconv.Itoa(points)}}

	var resp forecastResponse
	if err := c.doRequest(ctx, "forecast", loc, extra, &resp); err != nil {
		return nil, err
	}

	if len(resp.List) == 0 {
		return nil, fmt.Errorf("%w: forecast list is empty", domain.ErrMalformedResponse)
	}

	samples := make([]domain.WeatherSample, 0, len(resp.List))
	for _, obs := range resp.List {
		sample, err := toSample(loc, obs)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, loc domain.Location, extra url.Values, out any) error {
	params := url.Values{
		"lat":   {strconv.FormatFloat(loc.Lat, 'f', 4, 64)},
		"lon":   {strconv.FormatFloat(loc.Lon, 'f', 4, 64)},
		"units": {"imperial"},
		"appid": {c.apiKey},
	}
	for k, vs := range extra {
		params[k] = vs
	}

	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("%w: %s request: %v", domain.ErrProviderUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned status %d: %s", domain.ErrProviderUnavailable, endpoint, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", domain.ErrMalformedResponse, endpoint, err)
	}
	return nil
}

// toSample maps a provider observation onto the domain sample. The scan
// location's labels are carried through; the provider's coordinate is ignored
// in favor of the roster coordinate.
func toSample(loc domain.Location, obs observation) (domain.WeatherSample, error) {
	if len(obs.Weather) == 0 {
		return domain.WeatherSample{}, fmt.Errorf("%w: missing weather conditions", domain.ErrMalformedResponse)
	}

	return domain.WeatherSample{
		Location:        loc,
		ObservedAt:      time.Unix(obs.Dt, 0).UTC(),
		ConditionCode:   obs.Weather[0].Main,
		Description:     obs.Weather[0].Description,
		WindSpeedMph:    obs.Wind.Speed,
		WindGustMph:     obs.Wind.Gust,
		TemperatureF:    obs.Main.Temp,
		HumidityPct:     obs.Main.Humidity,
		PressureHpa:     obs.Main.Pressure,
		PrecipitationIn: obs.Rain.OneHour + obs.Snow.OneHour,
	}, nil
}

// OpenWeatherMap API response types, reduced to the consumed fields.

type observation struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []conditions `json:"weather"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Rain precipitation `json:"rain"`
	Snow precipitation `json:"snow"`
	Dt   int64         `json:"dt"`
}

type conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// precipitation is the provider's optional {"1h": n} block; absent blocks
// decode to zero.
type precipitation struct {
	OneHour float64 `json:"1h"`
}

type forecastResponse struct {
	List []observation `json:"list"`
}
