package network_wifi

import (
	"strings"

	wifictl "github.com/dogeorg/wifictl/pkg"
)

// NmcliScanner lists visible networks through `nmcli d wifi list`.
type NmcliScanner struct {
	runner wifictl.CommandRunner
}

var _ Scanner = NmcliScanner{}

func NewNmcliScanner(runner wifictl.CommandRunner) NmcliScanner {
	return NmcliScanner{runner: runner}
}

// the -f column order is what ParseDeviceList depends on
var nmcliScanArgs = []string{"-f", "IN-USE,BSSID,SSID,CHAN,SIGNAL,SECURITY", "d", "wifi", "list"}

func (t NmcliScanner) Scan(networkInterface string) ([]ScannedNetwork, error) {
	out, err := t.runner.Output("nmcli", nmcliScanArgs...)
	if err != nil {
		return nil, err
	}
	networks := ParseDeviceList(out)
	logger.WithField("networks", len(networks)).Debug("nmcli scan complete")
	return networks, nil
}

// ParseDeviceList reads nmcli's tabular scan output. The first line is a
// header, every other line is one network in whitespace-split columns:
//
//	IN-USE  BSSID              SSID     CHAN  SIGNAL  SECURITY
//	*       AA:BB:CC:DD:EE:FF  HomeNet  11    72      WPA2
//
// The IN-USE column only produces a token on the active network, which
// shifts every other column left by one. A second security token, when
// nmcli prints one, replaces the first. Lines that do not carry a full
// row are dropped. SSIDs containing whitespace do not survive this
// format.
func ParseDeviceList(out string) []ScannedNetwork {
	networks := []ScannedNetwork{}

	lines := strings.Split(out, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "IN-USE" {
			continue
		}

		var n ScannedNetwork
		if fields[0] == "*" {
			n.InUse = true
			fields = fields[1:]
		}
		if len(fields) < 5 {
			continue
		}

		n.BSSID = fields[0]
		n.SSID = fields[1]
		n.Channel = fields[2]
		n.Signal = fields[3]
		n.Security = fields[4]
		if len(fields) > 5 {
			n.Security = fields[5]
		}

		networks = append(networks, n)
	}

	return networks
}
