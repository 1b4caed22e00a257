// Package weather fetches current conditions and sun times from the
// OpenWeather current-weather endpoint.
//
// The planner treats weather as decoration: every failure collapses into the
// Unavailable summary and absent sun times, never into a request error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'rose.weather'
func tracer() tracing.Trace {
	return tracing.Select("rose.weather")
}

// DefaultBaseURL is the production OpenWeather API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Unavailable is the display summary used whenever conditions cannot be
// fetched or decoded.
const Unavailable = "Weather data unavailable"

// Conditions is the decoded weather context for the planner page.
type Conditions struct {
	Summary string // e.g. "72.5°F, Scattered Clouds", or Unavailable
	Sunrise time.Time
	Sunset  time.Time
	HasSun  bool // Sunrise/Sunset are meaningful
}

// Client queries the OpenWeather current-weather endpoint for one location.
// The zero value is not usable; construct with New.
type Client struct {
	baseURL  string
	apiKey   string
	location string
	tz       *time.Location
	http     *http.Client
}

// New creates a weather client for a "City, CC" location string. Sun times
// are reported in tz. An empty baseURL selects the production endpoint.
func New(baseURL, apiKey, location string, tz *time.Location) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tz == nil {
		tz = time.UTC
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		location: location,
		tz:       tz,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// response covers the fields of the current-weather payload we use.
type response struct {
	Main struct {
		Temp float64 `json:"temp"` // °C with units=metric
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Sys struct {
		Sunrise int64 `json:"sunrise"` // unix UTC
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// Current fetches the current conditions. It never returns an error: any
// transport, decode, or payload problem degrades to the Unavailable summary.
func (c *Client) Current(ctx context.Context) Conditions {
	cond := Conditions{Summary: Unavailable}
	query := url.Values{
		"q":     {c.location},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		tracer().Errorf("building weather request: %v", err)
		return cond
	}
	resp, err := c.http.Do(req)
	if err != nil {
		tracer().Infof("weather fetch failed: %v", err)
		return cond
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		tracer().Infof("weather fetch returned status %d", resp.StatusCode)
		return cond
	}
	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		tracer().Infof("weather payload undecodable: %v", err)
		return cond
	}
	if len(payload.Weather) > 0 {
		tempF := payload.Main.Temp*9/5 + 32
		// a Caser carries state, so build one per call
		title := cases.Title(language.English)
		cond.Summary = fmt.Sprintf("%.1f°F, %s", tempF,
			title.String(payload.Weather[0].Description))
	}
	if payload.Sys.Sunrise > 0 && payload.Sys.Sunset > 0 {
		cond.Sunrise = time.Unix(payload.Sys.Sunrise, 0).In(c.tz)
		cond.Sunset = time.Unix(payload.Sys.Sunset, 0).In(c.tz)
		cond.HasSun = true
	}
	return cond
}
