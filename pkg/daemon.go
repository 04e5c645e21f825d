package wifictl

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dogeorg/wifictl/pkg/statefile"
)

const probeTimeout = 5 * time.Second

// DaemonState is the slice of daemon state worth keeping across
// restarts. It is written through a StateFile under the data dir.
type DaemonState struct {
	APIToken       string
	LastConnection *Connection // nilable, check before use!
}

// ConnectResult is what a connect attempt reports back to the caller.
type ConnectResult struct {
	Connected bool   `json:"connected"`
	SSID      string `json:"ssid"`
	Probe     string `json:"probe,omitempty"` // "up", "down" or "skipped"
}

// Daemon wraps one WifiManager behind a mutex and threads every side
// effect of an operation through one place: history rows, state file
// writes and websocket broadcasts. The manager itself stays lock free,
// so anything that shares it must go through here.
type Daemon struct {
	mu      sync.Mutex
	man     WifiManager
	stats   StatsReader
	probe   Prober
	store   *StoreManager
	state   *statefile.StateFile[DaemonState]
	Changes chan Change
}

func NewDaemon(man WifiManager, stats StatsReader, probe Prober, store *StoreManager, state *statefile.StateFile[DaemonState]) *Daemon {
	return &Daemon{
		man:     man,
		stats:   stats,
		probe:   probe,
		store:   store,
		state:   state,
		Changes: make(chan Change, 16),
	}
}

func (d *Daemon) Connect(ctx context.Context, ssid, password string) (ConnectResult, error) {
	d.mu.Lock()
	ok, err := d.man.Connect(ssid, password)
	d.mu.Unlock()
	if err != nil {
		return ConnectResult{}, err
	}

	res := ConnectResult{Connected: ok, SSID: ssid, Probe: "skipped"}
	if !ok {
		return res, nil
	}

	d.recordEvent("connect", ssid, "")
	d.saveLastConnection(&Connection{SSID: ssid})
	d.broadcast(Change{Type: "connection", Update: ConnectionUpdate{Connected: true, SSID: ssid}})

	if d.probe != nil {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		if err := d.probe.Check(pctx); err != nil {
			log.Printf("connectivity probe failed: %v", err)
			res.Probe = "down"
		} else {
			res.Probe = "up"
		}
	}
	return res, nil
}

func (d *Daemon) Disconnect() (bool, error) {
	d.mu.Lock()
	conn, _ := d.man.Current()
	ok, err := d.man.Disconnect()
	d.mu.Unlock()
	if err != nil || !ok {
		return ok, err
	}

	d.recordEvent("disconnect", conn.SSID, "")
	d.saveLastConnection(nil)
	d.broadcast(Change{Type: "connection", Update: ConnectionUpdate{Connected: false}})
	return true, nil
}

// Scan runs one scan, records it and broadcasts the result. Both the
// REST surface and the background monitor come through here.
func (d *Daemon) Scan() ([]Network, error) {
	d.mu.Lock()
	networks, err := d.man.Scan()
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if d.store != nil {
		if err := d.store.RecordScan(d.man.Interface(), networks); err != nil {
			log.Printf("failed to record scan: %v", err)
		}
	}
	d.broadcast(Change{Type: "scan", Update: ScanUpdate{Interface: d.man.Interface(), Networks: networks}})
	return networks, nil
}

func (d *Daemon) SetRadio(on bool) error {
	d.mu.Lock()
	var err error
	if on {
		err = d.man.Radio().TurnOn()
	} else {
		err = d.man.Radio().TurnOff()
	}
	d.mu.Unlock()
	if err != nil {
		return err
	}

	kind := "radio_on"
	if !on {
		kind = "radio_off"
	}
	d.recordEvent(kind, "", "")
	d.broadcast(Change{Type: "radio", Update: RadioUpdate{Enabled: on}})
	return nil
}

func (d *Daemon) Status() StatusReport {
	d.mu.Lock()
	radio, err := d.man.Radio().Enabled()
	if err != nil {
		log.Printf("failed to read radio state: %v", err)
	}
	conn, connected := d.man.Current()
	d.mu.Unlock()

	report := StatusReport{
		Interface: d.man.Interface(),
		Radio:     radio,
		Connected: connected,
	}
	if connected {
		report.SSID = conn.SSID
	}
	if d.stats != nil {
		if s, err := d.stats.InterfaceStats(d.man.Interface()); err == nil {
			report.Stats = s
		}
	}
	return report
}

func (d *Daemon) Interfaces() ([]InterfaceInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.man.Interfaces()
}

// History returns recent rows, empty when no store is configured.
func (d *Daemon) History(limit int) (HistoryReport, error) {
	report := HistoryReport{Events: []HistoryEvent{}, Scans: []HistoryScan{}}
	if d.store == nil {
		return report, nil
	}
	events, err := d.store.RecentEvents(limit)
	if err != nil {
		return report, err
	}
	scans, err := d.store.RecentScans(limit)
	if err != nil {
		return report, err
	}
	report.Events = events
	report.Scans = scans
	return report, nil
}

func (d *Daemon) recordEvent(kind, ssid, detail string) {
	if d.store == nil {
		return
	}
	if err := d.store.RecordEvent(kind, ssid, detail); err != nil {
		log.Printf("failed to record %s event: %v", kind, err)
	}
}

func (d *Daemon) saveLastConnection(conn *Connection) {
	if d.state == nil {
		return
	}
	s, _, err := d.state.Load()
	if err != nil {
		log.Printf("failed to load daemon state: %v", err)
		return
	}
	s.LastConnection = conn
	if err := d.state.Save(s); err != nil {
		log.Printf("failed to save daemon state: %v", err)
	}
}

// broadcast never blocks the control path: when nobody is draining the
// channel the change is dropped.
func (d *Daemon) broadcast(c Change) {
	select {
	case d.Changes <- c:
	default:
	}
}
