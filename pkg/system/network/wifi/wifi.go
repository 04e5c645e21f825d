package network_wifi

import "github.com/sirupsen/logrus"

var logger = logrus.WithField("module", "wifi")

// ScannedNetwork is one access point as the platform tool reported it.
// Channel and Signal stay strings, the tools scale them differently.
type ScannedNetwork struct {
	SSID     string
	BSSID    string
	Channel  string
	Signal   string
	Security string
	InUse    bool
}

// A Scanner lists the networks visible from one wireless interface.
type Scanner interface {
	Scan(networkInterface string) ([]ScannedNetwork, error)
}
