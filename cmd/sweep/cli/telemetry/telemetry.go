// Package telemetry sends opt-in, anonymous usage events to PostHog. A nil
// *Client is valid and drops everything, so callers never need to branch on
// whether telemetry is enabled.
package telemetry

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"
)

const (
	endpoint = "https://eu.i.posthog.com"
	appID    = "sweep"
)

// Client wraps a PostHog client with a stable anonymous machine identity.
type Client struct {
	ph         posthog.Client
	distinctID string
}

// New returns a telemetry client, or nil when telemetry is disabled.
// Telemetry is off unless enabled in settings or via SWEEP_TELEMETRY=1;
// SWEEP_NO_TELEMETRY always wins.
func New(enabled bool) *Client {
	if os.Getenv("SWEEP_NO_TELEMETRY") != "" {
		return nil
	}
	if !enabled && os.Getenv("SWEEP_TELEMETRY") != "1" {
		return nil
	}

	apiKey := os.Getenv("SWEEP_POSTHOG_KEY")
	if apiKey == "" {
		return nil
	}

	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil
	}

	// ProtectedID hashes the machine id with the app name, so the raw
	// machine id never leaves the host.
	distinctID, err := machineid.ProtectedID(appID)
	if err != nil {
		distinctID = "unknown"
	}

	return &Client{ph: ph, distinctID: distinctID}
}

// Capture enqueues one event. Failures are ignored; telemetry must never
// affect the command outcome.
func (c *Client) Capture(event string, props map[string]any) {
	if c == nil {
		return
	}
	properties := posthog.NewProperties()
	for k, v := range props {
		properties = properties.Set(k, v)
	}
	_ = c.ph.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes pending events.
func (c *Client) Close() {
	if c == nil {
		return
	}
	_ = c.ph.Close()
}
