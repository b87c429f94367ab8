package pipeline_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_WithMockRequests(t *testing.T) {
	renderer := newTestRenderer(16)
	requests := readMockRequests(t)
	require.NotEmpty(t, requests)

	modes := []string{"summary", "compact", "full"}
	devices := []struct {
		name  string
		limit int
	}{
		{"zoleo", 200},
		{"inreach", 160},
	}

	for _, payload := range requests {
		for _, mode := range modes {
			for _, device := range devices {
				raw := rawEventFromMock(t, payload, mode, device.name)
				t.Run(fmt.Sprintf("%s/%s/%s", raw.Key, mode, device.name), func(t *testing.T) {
					reply, err := renderer.Transform(context.Background(), raw)
					require.NoError(t, err)

					assert.Equal(t, string(raw.Key), reply.RequestID)
					assert.Equal(t, mode, reply.Mode)
					assert.Equal(t, device.limit, reply.Limit)
					require.NotEmpty(t, reply.Segments)
					assertSegmentsFit(t, reply.Segments, reply.Limit)
				})
			}
		}
	}
}

func assertSegmentsFit(t *testing.T, segments []string, limit int) {
	t.Helper()
	if len(segments) == 1 {
		assert.LessOrEqual(t, utf8.RuneCountInString(segments[0]), limit)
		assert.False(t, strings.HasPrefix(segments[0], "(1/1)"))
		return
	}
	for i, seg := range segments {
		assert.LessOrEqual(t, utf8.RuneCountInString(seg), limit, "segment %d: %q", i+1, seg)
		assert.True(t, strings.HasPrefix(seg, fmt.Sprintf("(%d/%d) ", i+1, len(segments))), seg)
	}
}

func readMockRequests(t *testing.T) []map[string]json.RawMessage {
	t.Helper()

	path := filepath.Join("..", "..", "data", "mock", "forecast_requests.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var requests []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &requests))
	return requests
}

func rawEventFromMock(t *testing.T, payload map[string]json.RawMessage, mode, device string) domain.RawEvent {
	t.Helper()

	var id string
	require.NoError(t, json.Unmarshal(payload["id"], &id))

	withParams := make(map[string]json.RawMessage, len(payload)+2)
	for k, v := range payload {
		withParams[k] = v
	}
	withParams["mode"] = json.RawMessage(fmt.Sprintf("%q", mode))
	withParams["device"] = json.RawMessage(fmt.Sprintf("%q", device))

	value, err := json.Marshal(withParams)
	require.NoError(t, err)

	return domain.RawEvent{
		Key:   []byte(id),
		Value: value,
		Topic: "forecast-requests",
	}
}
