package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRenderRequest checks the struct constraints of a request.
func ValidateRenderRequest(req RenderRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid render request: %w", err)
	}
	return nil
}

// Periods returns the request's forecast as periods, preferring the NWS
// document over the plain text.
func (r RenderRequest) Periods() ([]ForecastPeriod, error) {
	if r.hasForecast() {
		return ParseNWSForecast(r.Forecast)
	}
	return ParseForecastText(r.ForecastText), nil
}

// NewReply builds the reply envelope for a request, stamped with the
// package clock.
func NewReply(req RenderRequest) RenderReply {
	return RenderReply{
		ID:         uuid.NewString(),
		RequestID:  req.ID,
		Sender:     req.Sender,
		Lat:        req.Lat,
		Lon:        req.Lon,
		RenderedAt: clock.Now().UTC(),
	}
}

// hasForecast treats an explicit JSON null like an absent document.
func (r RenderRequest) hasForecast() bool {
	return len(r.Forecast) > 0 && string(r.Forecast) != "null"
}
