package domain

import (
	"context"
	"encoding/json"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// RenderRequest asks for one forecast to be formatted and split for a device.
// Forecast carries an NWS forecast document and takes precedence over
// ForecastText.
type RenderRequest struct {
	ID           string          `json:"id,omitempty" validate:"max=64"`
	Sender       string          `json:"sender,omitempty" validate:"omitempty,email"`
	Lat          *float64        `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lon          *float64        `json:"lon,omitempty" validate:"omitempty,longitude"`
	Mode         string          `json:"mode,omitempty"`
	Days         *int            `json:"days,omitempty" validate:"omitempty,min=0"`
	Device       string          `json:"device,omitempty"`
	CustomLimit  int             `json:"custom_limit,omitempty" validate:"min=0"`
	ForecastText string          `json:"forecast_text,omitempty" validate:"required_without=Forecast"`
	Forecast     json.RawMessage `json:"forecast,omitempty"`
}

// RenderReply is the rendered forecast, ready for one transport call per segment.
type RenderReply struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	Sender     string    `json:"sender,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lon        *float64  `json:"lon,omitempty"`
	Mode       string    `json:"mode"`
	Device     string    `json:"device"`
	Limit      int       `json:"limit"`
	Characters int       `json:"characters"`
	Segments   []string  `json:"segments"`
	RenderedAt time.Time `json:"rendered_at"`
}
