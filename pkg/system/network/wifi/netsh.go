package network_wifi

import (
	"strconv"
	"strings"

	wifictl "github.com/dogeorg/wifictl/pkg"
)

// NetshScanner lists visible networks through `netsh wlan show networks`.
type NetshScanner struct {
	runner wifictl.CommandRunner
}

var _ Scanner = NetshScanner{}

func NewNetshScanner(runner wifictl.CommandRunner) NetshScanner {
	return NetshScanner{runner: runner}
}

func (t NetshScanner) Scan(networkInterface string) ([]ScannedNetwork, error) {
	out, err := t.runner.Output("netsh", "wlan", "show", "networks", "mode=bssid")
	if err != nil {
		return nil, err
	}
	networks := ParseNetworkBlocks(out)
	logger.WithField("networks", len(networks)).Debug("netsh scan complete")
	return networks, nil
}

// ParseNetworkBlocks reads netsh's paragraph scan output. Each network
// is a run of "Keyword : value" lines terminated by a blank line:
//
//	SSID 1 : HomeNet
//	    Network type            : Infrastructure
//	    Authentication          : WPA2-Personal
//	    Encryption              : CCMP
//	    BSSID 1                 : aa:bb:cc:dd:ee:ff
//	         Signal             : 72%
//	         Channel            : 11
//
// A paragraph may list several BSSIDs. The strongest one represents the
// network, ties keeping the first seen, and a paragraph that never named
// a BSSID is dropped. Keywords this parser does not know are skipped, as
// are the preamble lines.
func ParseNetworkBlocks(out string) []ScannedNetwork {
	networks := []ScannedNetwork{}

	current := ScannedNetwork{Signal: "0"}
	lastMAC := ""
	lastSignal := ""

	commit := func() {
		if current.BSSID != "" {
			networks = append(networks, current)
		}
		current = ScannedNetwork{Signal: "0"}
		lastMAC = ""
		lastSignal = ""
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			commit()
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "Interface", "There":
			// preamble: "Interface name : ..." / "There are N networks ..."
		case "SSID": // SSID 1 : HomeNet
			if len(fields) > 3 {
				current.SSID = fields[3]
			}
		case "Authentication": // Authentication : WPA2-Personal
			if len(fields) > 2 {
				current.Security = fields[2]
			}
		case "BSSID": // BSSID 1 : aa:bb:cc:dd:ee:ff
			lastMAC = ""
			if len(fields) > 3 {
				lastMAC = fields[3]
			}
		case "Signal": // Signal : 72%
			lastSignal = "0"
			if len(fields) > 2 {
				lastSignal = strings.TrimSuffix(fields[2], "%")
			}
		case "Channel": // Channel : 11
			lastChannel := ""
			if len(fields) > 2 {
				lastChannel = fields[2]
			}
			if parseSignal(lastSignal) > parseSignal(current.Signal) {
				current.BSSID = lastMAC
				current.Signal = lastSignal
				current.Channel = lastChannel
			}
		}
	}

	// netsh does not always terminate the final paragraph
	commit()

	return networks
}

// signal levels are small percentages, anything unparsable counts as 0
func parseSignal(s string) int8 {
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return 0
	}
	return int8(v)
}

// InterfaceDetail is one block of `netsh wlan show interfaces`.
type InterfaceDetail struct {
	Name  string
	MAC   string
	State string
	SSID  string
}

// ParseInterfaceList reads `netsh wlan show interfaces` output. A Name
// line opens a new interface block; values keep their embedded colons
// because only the first one splits the line.
func ParseInterfaceList(out string) []InterfaceDetail {
	details := []InterfaceDetail{}
	var current *InterfaceDetail

	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			details = append(details, InterfaceDetail{Name: value})
			current = &details[len(details)-1]
		case "Physical address":
			if current != nil {
				current.MAC = value
			}
		case "State":
			if current != nil {
				current.State = value
			}
		case "SSID":
			if current != nil {
				current.SSID = value
			}
		}
	}

	return details
}
