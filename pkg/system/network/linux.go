package network

import (
	"strings"

	wifictl "github.com/dogeorg/wifictl/pkg"
	network_wifi "github.com/dogeorg/wifictl/pkg/system/network/wifi"
)

var _ wifictl.WifiManager = &WifiManagerLinux{}

const (
	nmcliConnectOK    = "successfully activated"
	nmcliDisconnectOK = "disconnect"
)

// WifiManagerLinux drives NetworkManager through nmcli. Success of the
// mutating commands is read off nmcli's prose, not its exit status.
type WifiManagerLinux struct {
	runner  wifictl.CommandRunner
	iface   string
	radio   wifictl.Radio
	scanner network_wifi.Scanner
	current *wifictl.Connection
}

func NewWifiManagerLinux(runner wifictl.CommandRunner, iface string) *WifiManagerLinux {
	return &WifiManagerLinux{
		runner:  runner,
		iface:   iface,
		radio:   NmcliRadio{runner: runner},
		scanner: network_wifi.NewNmcliScanner(runner),
	}
}

func (t *WifiManagerLinux) Interface() string {
	return t.iface
}

func (t *WifiManagerLinux) Radio() wifictl.Radio {
	return t.radio
}

// Connect refuses to even try while the radio is off. A marker miss
// leaves the recorded connection alone.
func (t *WifiManagerLinux) Connect(ssid, password string) (bool, error) {
	enabled, err := t.radio.Enabled()
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, wifictl.ErrRadioOff
	}

	out, err := t.runner.Output("nmcli", "d", "wifi", "connect", ssid, "password", password, "ifname", t.iface)
	if err != nil {
		return false, err
	}
	if !strings.Contains(out, nmcliConnectOK) {
		logger.WithField("ssid", ssid).Info("nmcli did not activate the connection")
		return false, nil
	}

	t.current = &wifictl.Connection{SSID: ssid}
	return true, nil
}

func (t *WifiManagerLinux) Disconnect() (bool, error) {
	out, err := t.runner.Output("nmcli", "d", "disconnect", "ifname", t.iface)
	if err != nil {
		return false, err
	}
	if !strings.Contains(out, nmcliDisconnectOK) {
		return false, nil
	}

	t.current = nil
	return true, nil
}

func (t *WifiManagerLinux) Scan() ([]wifictl.Network, error) {
	scanned, err := t.scanner.Scan(t.iface)
	if err != nil {
		return nil, err
	}
	return toNetworks(scanned), nil
}

func (t *WifiManagerLinux) Current() (wifictl.Connection, bool) {
	if t.current == nil {
		return wifictl.Connection{}, false
	}
	return *t.current, true
}

func (t *WifiManagerLinux) Interfaces() ([]wifictl.InterfaceInfo, error) {
	return ListWifiInterfaces()
}

var _ wifictl.Radio = NmcliRadio{}

// NmcliRadio flips NetworkManager's software kill switch.
type NmcliRadio struct {
	runner wifictl.CommandRunner
}

func (t NmcliRadio) Enabled() (bool, error) {
	out, err := t.runner.Output("nmcli", "radio", "wifi")
	if err != nil {
		return false, err
	}
	// "enabled" or "disabled", padded differently between versions
	state := strings.ReplaceAll(strings.ReplaceAll(out, " ", ""), "\n", "")
	return strings.Contains(state, "enabled"), nil
}

func (t NmcliRadio) TurnOn() error {
	_, err := t.runner.Output("nmcli", "radio", "wifi", "on")
	return err
}

func (t NmcliRadio) TurnOff() error {
	_, err := t.runner.Output("nmcli", "radio", "wifi", "off")
	return err
}
