/*
wifictl drives host Wi-Fi through the platform's own network tool rather
than talking to drivers directly. Every control operation is an argument
vector handed to an injectable CommandRunner, and the captured output is
what decides the outcome:

	CLI / REST ──► WifiManager ──► CommandRunner ──► nmcli / netsh wlan
	                   │                                    │
	                   └── markers + scan grammars ◄── stdout

Mutating commands (connect, disconnect, add profile) succeed when stdout
contains a known marker substring. Scans are parsed by two grammars, one
per tool family, into the same Network record. Nothing in this package
spawns goroutines or locks; the daemon in cmd/wifictld serialises access
around one manager.
*/
package wifictl

import "context"

// see ./system/network/ for per-platform implementations

// WifiManager is the control surface for one wireless interface.
// Connect and Disconnect report marker misses as (false, nil); an error
// means the tool could not be run at all.
type WifiManager interface {
	// Interface returns the wireless interface this manager drives.
	Interface() string
	Scan() ([]Network, error)
	Connect(ssid string, password string) (bool, error)
	Disconnect() (bool, error)
	// Current reports the connection established through this manager,
	// false when none has been made or the last one was torn down.
	Current() (Connection, bool)
	Radio() Radio
	Interfaces() ([]InterfaceInfo, error)
}

// Radio is the soft kill switch for a wireless device.
type Radio interface {
	Enabled() (bool, error)
	TurnOn() error
	TurnOff() error
}

// CommandRunner executes a platform tool and captures its stdout.
// Implementations must treat a non-zero exit as a normal result, not an
// error: the callers match markers against whatever the tool printed.
type CommandRunner interface {
	Output(name string, arg ...string) (string, error)
}

// checks whether the host can actually reach the network
// after a connect reports success
type Prober interface {
	Check(ctx context.Context) error
}

// reads cumulative traffic counters for an interface
type StatsReader interface {
	InterfaceStats(name string) (*InterfaceStats, error)
}

// writes a WLAN profile for a network and returns its path. Windows
// connects against registered profiles, never raw credentials.
type ProfileProvisioner interface {
	Provision(ssid string, password string) (string, error)
}
