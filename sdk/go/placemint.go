package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Client is a minimal Go client for the placemint API
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// Event mirrors the score request body
type Event struct {
	Name           string   `json:"name"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	VenueLat       float64  `json:"venue_lat"`
	VenueLon       float64  `json:"venue_lon"`
	TargetAudience []string `json:"target_audience"`
	EventType      string   `json:"event_type"`
	TimePeriod     string   `json:"time_period,omitempty"`
}

// Recommendation is the flattened recommendation returned by the API
type Recommendation struct {
	ZoneID             string          `json:"zone_id"`
	ZoneName           string          `json:"zone_name"`
	TotalScore         float64         `json:"total_score"`
	AudienceMatchScore float64         `json:"audience_match_score"`
	TemporalScore      float64         `json:"temporal_score"`
	DistanceScore      float64         `json:"distance_score"`
	DwellTimeScore     float64         `json:"dwell_time_score"`
	DistanceMiles      float64         `json:"distance_miles"`
	Reasoning          string          `json:"reasoning"`
	MatchedSignals     []string        `json:"matched_signals"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	RiskWarning        json.RawMessage `json:"risk_warning,omitempty"`
}

type listEnvelope struct {
	Data  []Recommendation `json:"data"`
	Count int              `json:"count"`
}

// Score ranks every zone for the event
func (c *Client) Score(ctx context.Context, event Event) ([]Recommendation, error) {
	return c.postEvent(ctx, c.BaseURL+"/v1/recommendations/score", event)
}

// Top returns the top N recommendations (1-30; the server defaults to 10)
func (c *Client) Top(ctx context.Context, event Event, limit int) ([]Recommendation, error) {
	u := c.BaseURL + "/v1/recommendations/top"
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	return c.postEvent(ctx, u, event)
}

// Zones fetches the raw zone inventory
func (c *Client) Zones(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/v1/zones", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zones request failed: %s", resp.Status)
	}
	var out struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) postEvent(ctx context.Context, url string, event Event) ([]Recommendation, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation request failed: %s", resp.Status)
	}

	var out listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
