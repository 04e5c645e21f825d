package wifictl

// Network is one access point row from a scan, kept in the shape the
// platform tool reported it. Channel and Signal stay strings: nmcli and
// netsh scale them differently and nothing downstream does arithmetic
// on them.
type Network struct {
	SSID     string `json:"ssid"`
	BSSID    string `json:"bssid"`    // empty when the tool hides the AP MAC
	Channel  string `json:"channel"`  // as reported, not normalised
	Signal   string `json:"signal"`   // nmcli: 0-100, netsh: percentage with % stripped
	Security string `json:"security"` // empty means open or unknown
	InUse    bool   `json:"inUse"`    // nmcli * column, always false from netsh
}

// Connection records a connect that was accepted by the platform tool.
type Connection struct {
	SSID string `json:"ssid"`
}

// InterfaceInfo describes one wireless interface on the host.
type InterfaceInfo struct {
	Name string `json:"name"`
	MAC  string `json:"mac,omitempty"`
	Type string `json:"type,omitempty"`
}

// InterfaceStats are cumulative counters for one interface.
type InterfaceStats struct {
	RxBytes   uint64 `json:"rxBytes"`
	TxBytes   uint64 `json:"txBytes"`
	RxPackets uint64 `json:"rxPackets"`
	TxPackets uint64 `json:"txPackets"`
}

// StatusReport is the daemon's status payload.
type StatusReport struct {
	Interface string          `json:"interface"`
	Radio     bool            `json:"radio"`
	Connected bool            `json:"connected"`
	SSID      string          `json:"ssid,omitempty"`
	Stats     *InterfaceStats `json:"stats,omitempty"` // nilable, counters are best-effort
}
