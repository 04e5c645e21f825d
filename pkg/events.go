package wifictl

// A Change is pushed to websocket clients whenever the daemon learns
// something new: a connect or disconnect it performed, a radio flip,
// or a fresh background scan.
type Change struct {
	Type   string `json:"type"` // "connection", "radio" or "scan"
	Error  string `json:"error,omitempty"`
	Update Update `json:"update"`
}

// An Update is the payload carried inside a Change. Anything placed
// here ends up JSON-encoded on the websocket, so it must marshal
// cleanly.
type Update any

type ConnectionUpdate struct {
	Connected bool   `json:"connected"`
	SSID      string `json:"ssid,omitempty"`
}

type RadioUpdate struct {
	Enabled bool `json:"enabled"`
}

// ScanUpdate carries the networks seen by the most recent scan.
type ScanUpdate struct {
	Interface string    `json:"interface"`
	Networks  []Network `json:"networks"`
}
