package network

import (
	"fmt"
	"os"
	"strings"

	wifictl "github.com/dogeorg/wifictl/pkg"
	network_wifi "github.com/dogeorg/wifictl/pkg/system/network/wifi"
)

var _ wifictl.WifiManager = &WifiManagerWindows{}

const (
	netshConnectOK    = "completed successfully"
	netshDisconnectOK = "disconnect"
	netshProfileOK    = "is added on interface"
)

// WifiManagerWindows drives the WLAN AutoConfig service through netsh.
// Windows connects against registered profiles, so Connect renders one
// from the XML template and registers it before asking for the
// connection.
type WifiManagerWindows struct {
	runner      wifictl.CommandRunner
	iface       string
	radio       wifictl.Radio
	scanner     network_wifi.Scanner
	provisioner wifictl.ProfileProvisioner
	current     *wifictl.Connection
}

func NewWifiManagerWindows(runner wifictl.CommandRunner, iface string, provisioner wifictl.ProfileProvisioner) *WifiManagerWindows {
	return &WifiManagerWindows{
		runner:      runner,
		iface:       iface,
		radio:       NetshRadio{runner: runner, iface: iface},
		scanner:     network_wifi.NewNetshScanner(runner),
		provisioner: provisioner,
	}
}

func (t *WifiManagerWindows) Interface() string {
	return t.iface
}

func (t *WifiManagerWindows) Radio() wifictl.Radio {
	return t.radio
}

func (t *WifiManagerWindows) Connect(ssid, password string) (bool, error) {
	enabled, err := t.radio.Enabled()
	if err != nil {
		return false, err
	}
	if !enabled {
		return false, wifictl.ErrRadioOff
	}

	if err := t.addProfile(ssid, password); err != nil {
		return false, err
	}

	out, err := t.runner.Output("netsh", "wlan", "connect", fmt.Sprintf("name=%s", ssid))
	if err != nil {
		return false, err
	}
	if !strings.Contains(out, netshConnectOK) {
		logger.WithField("ssid", ssid).Info("netsh did not complete the connection")
		return false, nil
	}

	t.current = &wifictl.Connection{SSID: ssid}
	return true, nil
}

func (t *WifiManagerWindows) addProfile(ssid, password string) error {
	path, err := t.provisioner.Provision(ssid, password)
	if err != nil {
		return fmt.Errorf("%w: %v", wifictl.ErrAddProfile, err)
	}
	// the rendered profile holds the passphrase in clear
	defer os.Remove(path)

	out, err := t.runner.Output("netsh", "wlan", "add", "profile", fmt.Sprintf("filename=%s", path))
	if err != nil {
		return fmt.Errorf("%w: %v", wifictl.ErrAddProfile, err)
	}
	if !strings.Contains(out, netshProfileOK) {
		return fmt.Errorf("%w: %s", wifictl.ErrAddProfile, strings.TrimSpace(out))
	}
	return nil
}

func (t *WifiManagerWindows) Disconnect() (bool, error) {
	out, err := t.runner.Output("netsh", "wlan", "disconnect")
	if err != nil {
		return false, err
	}
	if !strings.Contains(out, netshDisconnectOK) {
		return false, nil
	}

	t.current = nil
	return true, nil
}

func (t *WifiManagerWindows) Scan() ([]wifictl.Network, error) {
	scanned, err := t.scanner.Scan(t.iface)
	if err != nil {
		return nil, err
	}
	return toNetworks(scanned), nil
}

func (t *WifiManagerWindows) Current() (wifictl.Connection, bool) {
	if t.current == nil {
		return wifictl.Connection{}, false
	}
	return *t.current, true
}

func (t *WifiManagerWindows) Interfaces() ([]wifictl.InterfaceInfo, error) {
	out, err := t.runner.Output("netsh", "wlan", "show", "interfaces")
	if err != nil {
		return nil, err
	}

	infos := []wifictl.InterfaceInfo{}
	for _, d := range network_wifi.ParseInterfaceList(out) {
		infos = append(infos, wifictl.InterfaceInfo{
			Name: d.Name,
			MAC:  d.MAC,
		})
	}
	return infos, nil
}

var _ wifictl.Radio = NetshRadio{}

// NetshRadio reads and flips the software radio switch. The state comes
// off the "Radio status" rows of `netsh wlan show interfaces`.
type NetshRadio struct {
	runner wifictl.CommandRunner
	iface  string
}

func (t NetshRadio) Enabled() (bool, error) {
	out, err := t.runner.Output("netsh", "wlan", "show", "interfaces")
	if err != nil {
		return false, err
	}
	state := strings.ToLower(strings.ReplaceAll(out, " ", ""))
	return strings.Contains(state, "softwareon"), nil
}

func (t NetshRadio) TurnOn() error {
	_, err := t.runner.Output("netsh", "interface", "set", "interface", fmt.Sprintf("name=%s", t.iface), "admin=enabled")
	return err
}

func (t NetshRadio) TurnOff() error {
	_, err := t.runner.Output("netsh", "interface", "set", "interface", fmt.Sprintf("name=%s", t.iface), "admin=disabled")
	return err
}
