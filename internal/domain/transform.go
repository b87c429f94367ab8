package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseRawEvent deserializes a RawEvent's value into a validated RenderRequest.
// A request without an ID takes the message key, or a generated UUID when
// the key is empty too.
func ParseRawEvent(raw RawEvent) (RenderRequest, error) {
	var req RenderRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return RenderRequest{}, fmt.Errorf("parse raw event: %w", err)
	}
	if req.Mode == "" {
		req.Mode = raw.Headers["mode"]
	}
	if req.ID == "" {
		req.ID = string(raw.Key)
	}
	return finishRequest(req)
}

// ParseRenderRequest decodes and validates a render request body.
func ParseRenderRequest(data []byte) (RenderRequest, error) {
	var req RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return RenderRequest{}, fmt.Errorf("parse render request: %w", err)
	}
	return finishRequest(req)
}

func finishRequest(req RenderRequest) (RenderRequest, error) {
	if err := ValidateRenderRequest(req); err != nil {
		return RenderRequest{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return req, nil
}

// Fingerprint produces a deterministic key for a rendering. Identical
// forecast payloads rendered with identical parameters share a fingerprint.
func Fingerprint(req RenderRequest, mode string, limit int) string {
	days := "all"
	if req.Days != nil {
		days = fmt.Sprint(*req.Days)
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|", mode, days, limit)
	if req.hasForecast() {
		h.Write([]byte("nws|"))
		h.Write(req.Forecast)
	} else {
		h.Write([]byte("text|"))
		h.Write([]byte(strings.TrimSpace(req.ForecastText)))
	}
	return hex.EncodeToString(h.Sum(nil))
}
