package network

import (
	"fmt"
	"runtime"

	wifictl "github.com/dogeorg/wifictl/pkg"
	network_profile "github.com/dogeorg/wifictl/pkg/system/network/profile"
	network_wifi "github.com/dogeorg/wifictl/pkg/system/network/wifi"
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "network")

// NewWifiManager returns the manager for a platform, defaulting to the
// host OS. An empty iface means take the first wireless interface the
// platform reports.
func NewWifiManager(runner wifictl.CommandRunner, iface, platform string) (wifictl.WifiManager, error) {
	if platform == "" {
		platform = runtime.GOOS
	}

	switch platform {
	case "linux":
		if err := CheckNmcliVersion(runner); err != nil {
			return nil, err
		}
		if iface == "" {
			name, err := FirstWifiInterface()
			if err != nil {
				return nil, err
			}
			iface = name
			logger.WithField("interface", iface).Info("using discovered wireless interface")
		}
		return NewWifiManagerLinux(runner, iface), nil

	case "windows":
		if iface == "" {
			name, err := firstNetshInterface(runner)
			if err != nil {
				return nil, err
			}
			iface = name
			logger.WithField("interface", iface).Info("using discovered wireless interface")
		}
		return NewWifiManagerWindows(runner, iface, network_profile.NewTempFileProvisioner()), nil

	default:
		return nil, fmt.Errorf("%w: %s", wifictl.ErrUnsupportedPlatform, platform)
	}
}

// ListWifiInterfaces walks the 802.11 interfaces over netlink. This only
// answers on Linux, elsewhere the manager asks its platform tool instead.
func ListWifiInterfaces() ([]wifictl.InterfaceInfo, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, fmt.Errorf("could not init a wifi interface client: %w", err)
	}
	defer wifiClient.Close()

	wifiInterfaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("could not list wifi interfaces: %w", err)
	}

	infos := []wifictl.InterfaceInfo{}
	for _, wifiInterface := range wifiInterfaces {
		// P2P devices come back without a netdev name
		if wifiInterface.Name == "" {
			continue
		}
		infos = append(infos, wifictl.InterfaceInfo{
			Name: wifiInterface.Name,
			MAC:  wifiInterface.HardwareAddr.String(),
			Type: wifiInterface.Type.String(),
		})
	}
	return infos, nil
}

func FirstWifiInterface() (string, error) {
	infos, err := ListWifiInterfaces()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", wifictl.ErrNoInterface
	}
	return infos[0].Name, nil
}

func firstNetshInterface(runner wifictl.CommandRunner) (string, error) {
	out, err := runner.Output("netsh", "wlan", "show", "interfaces")
	if err != nil {
		return "", err
	}
	details := network_wifi.ParseInterfaceList(out)
	if len(details) == 0 {
		return "", wifictl.ErrNoInterface
	}
	return details[0].Name, nil
}

func toNetworks(scanned []network_wifi.ScannedNetwork) []wifictl.Network {
	networks := make([]wifictl.Network, 0, len(scanned))
	for _, s := range scanned {
		networks = append(networks, wifictl.Network{
			SSID:     s.SSID,
			BSSID:    s.BSSID,
			Channel:  s.Channel,
			Signal:   s.Signal,
			Security: s.Security,
			InUse:    s.InUse,
		})
	}
	return networks
}
