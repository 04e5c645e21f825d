package wifictl

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dogeorg/wifictl/pkg/statefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRadio struct {
	enabled  bool
	err      error
	onCalls  int
	offCalls int
}

func (r *fakeRadio) Enabled() (bool, error) { return r.enabled, r.err }
func (r *fakeRadio) TurnOn() error          { r.onCalls++; r.enabled = true; return nil }
func (r *fakeRadio) TurnOff() error         { r.offCalls++; r.enabled = false; return nil }

var _ Radio = (*fakeRadio)(nil)

type fakeManager struct {
	iface      string
	radio      *fakeRadio
	networks   []Network
	scanErr    error
	connectOK  bool
	connectErr error
	discOK     bool
	discErr    error
	current    *Connection
	scans      int
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		iface:     "wlan0",
		radio:     &fakeRadio{enabled: true},
		networks:  []Network{{SSID: "HomeNet", BSSID: "AA:BB:CC:DD:EE:FF", Channel: "11", Signal: "72", Security: "WPA2"}},
		connectOK: true,
		discOK:    true,
	}
}

func (m *fakeManager) Interface() string { return m.iface }

func (m *fakeManager) Scan() ([]Network, error) {
	m.scans++
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	return m.networks, nil
}

func (m *fakeManager) Connect(ssid, password string) (bool, error) {
	if m.connectErr != nil {
		return false, m.connectErr
	}
	if m.connectOK {
		m.current = &Connection{SSID: ssid}
	}
	return m.connectOK, nil
}

func (m *fakeManager) Disconnect() (bool, error) {
	if m.discErr != nil {
		return false, m.discErr
	}
	if m.discOK {
		m.current = nil
	}
	return m.discOK, nil
}

func (m *fakeManager) Current() (Connection, bool) {
	if m.current == nil {
		return Connection{}, false
	}
	return *m.current, true
}

func (m *fakeManager) Radio() Radio { return m.radio }

func (m *fakeManager) Interfaces() ([]InterfaceInfo, error) {
	return []InterfaceInfo{{Name: m.iface, MAC: "a4:6b:b6:12:34:56"}}, nil
}

var _ WifiManager = (*fakeManager)(nil)

type fakeStats struct {
	stats InterfaceStats
	err   error
}

func (s fakeStats) InterfaceStats(name string) (*InterfaceStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := s.stats
	return &c, nil
}

var _ StatsReader = fakeStats{}

type fakeProber struct {
	err    error
	checks int
}

func (p *fakeProber) Check(ctx context.Context) error {
	p.checks++
	return p.err
}

var _ Prober = (*fakeProber)(nil)

func newTestState(t *testing.T) *statefile.StateFile[DaemonState] {
	t.Helper()
	return statefile.New[DaemonState](filepath.Join(t.TempDir(), "state.gob"))
}

func nextChange(t *testing.T, d *Daemon) Change {
	t.Helper()
	select {
	case c := <-d.Changes:
		return c
	default:
		t.Fatal("no change was broadcast")
		return Change{}
	}
}

func TestDaemonConnect(t *testing.T) {
	man := newFakeManager()
	state := newTestState(t)
	d := NewDaemon(man, nil, nil, nil, state)

	res, err := d.Connect(context.Background(), "HomeNet", "hunter2")
	require.NoError(t, err)
	assert.True(t, res.Connected)
	assert.Equal(t, "HomeNet", res.SSID)
	assert.Equal(t, "skipped", res.Probe)

	c := nextChange(t, d)
	assert.Equal(t, "connection", c.Type)
	assert.Equal(t, ConnectionUpdate{Connected: true, SSID: "HomeNet"}, c.Update)

	s, exists, err := state.Load()
	require.NoError(t, err)
	assert.True(t, exists)
	require.NotNil(t, s.LastConnection)
	assert.Equal(t, "HomeNet", s.LastConnection.SSID)
}

func TestDaemonConnectRefused(t *testing.T) {
	man := newFakeManager()
	man.connectOK = false
	state := newTestState(t)
	d := NewDaemon(man, nil, nil, nil, state)

	res, err := d.Connect(context.Background(), "HomeNet", "badpass")
	require.NoError(t, err)
	assert.False(t, res.Connected)

	// a refused connect makes no noise and persists nothing
	assert.Empty(t, d.Changes)
	_, exists, err := state.Load()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDaemonConnectError(t *testing.T) {
	man := newFakeManager()
	man.connectErr = ErrRadioOff
	d := NewDaemon(man, nil, nil, nil, nil)

	_, err := d.Connect(context.Background(), "HomeNet", "hunter2")
	require.ErrorIs(t, err, ErrRadioOff)
	assert.Empty(t, d.Changes)
}

func TestDaemonConnectProbe(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		probe := &fakeProber{}
		d := NewDaemon(newFakeManager(), nil, probe, nil, nil)

		res, err := d.Connect(context.Background(), "HomeNet", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "up", res.Probe)
		assert.Equal(t, 1, probe.checks)
	})

	t.Run("down", func(t *testing.T) {
		probe := &fakeProber{err: errors.New("no route to host")}
		d := NewDaemon(newFakeManager(), nil, probe, nil, nil)

		res, err := d.Connect(context.Background(), "HomeNet", "hunter2")
		require.NoError(t, err)
		assert.True(t, res.Connected)
		assert.Equal(t, "down", res.Probe)
	})

	t.Run("refused connect never probes", func(t *testing.T) {
		probe := &fakeProber{}
		man := newFakeManager()
		man.connectOK = false
		d := NewDaemon(man, nil, probe, nil, nil)

		_, err := d.Connect(context.Background(), "HomeNet", "hunter2")
		require.NoError(t, err)
		assert.Zero(t, probe.checks)
	})
}

func TestDaemonDisconnect(t *testing.T) {
	man := newFakeManager()
	state := newTestState(t)
	d := NewDaemon(man, nil, nil, nil, state)

	_, err := d.Connect(context.Background(), "HomeNet", "hunter2")
	require.NoError(t, err)
	nextChange(t, d)

	ok, err := d.Disconnect()
	require.NoError(t, err)
	assert.True(t, ok)

	c := nextChange(t, d)
	assert.Equal(t, "connection", c.Type)
	assert.Equal(t, ConnectionUpdate{Connected: false}, c.Update)

	s, exists, err := state.Load()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Nil(t, s.LastConnection)
}

func TestDaemonDisconnectRefused(t *testing.T) {
	man := newFakeManager()
	man.discOK = false
	state := newTestState(t)
	d := NewDaemon(man, nil, nil, nil, state)

	_, err := d.Connect(context.Background(), "HomeNet", "hunter2")
	require.NoError(t, err)
	nextChange(t, d)

	ok, err := d.Disconnect()
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Empty(t, d.Changes)
	s, _, err := state.Load()
	require.NoError(t, err)
	require.NotNil(t, s.LastConnection)
	assert.Equal(t, "HomeNet", s.LastConnection.SSID)
}

func TestDaemonScan(t *testing.T) {
	store := newTestStore(t)
	man := newFakeManager()
	d := NewDaemon(man, nil, nil, store, nil)

	networks, err := d.Scan()
	require.NoError(t, err)
	require.Len(t, networks, 1)

	c := nextChange(t, d)
	assert.Equal(t, "scan", c.Type)
	assert.Equal(t, ScanUpdate{Interface: "wlan0", Networks: networks}, c.Update)

	scans, err := store.RecentScans(0)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "HomeNet", scans[0].SSID)
	assert.Equal(t, "wlan0", scans[0].Interface)
}

func TestDaemonScanError(t *testing.T) {
	man := newFakeManager()
	man.scanErr = errors.New("tool missing")
	d := NewDaemon(man, nil, nil, nil, nil)

	_, err := d.Scan()
	require.Error(t, err)
	assert.Empty(t, d.Changes)
}

func TestDaemonSetRadio(t *testing.T) {
	store := newTestStore(t)
	man := newFakeManager()
	d := NewDaemon(man, nil, nil, store, nil)

	require.NoError(t, d.SetRadio(true))
	assert.Equal(t, 1, man.radio.onCalls)
	c := nextChange(t, d)
	assert.Equal(t, "radio", c.Type)
	assert.Equal(t, RadioUpdate{Enabled: true}, c.Update)

	require.NoError(t, d.SetRadio(false))
	assert.Equal(t, 1, man.radio.offCalls)
	c = nextChange(t, d)
	assert.Equal(t, RadioUpdate{Enabled: false}, c.Update)

	events, err := store.RecentEvents(0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "radio_off", events[0].Kind)
	assert.Equal(t, "radio_on", events[1].Kind)
}

func TestDaemonStatus(t *testing.T) {
	man := newFakeManager()
	man.current = &Connection{SSID: "HomeNet"}
	stats := fakeStats{stats: InterfaceStats{RxBytes: 100, TxBytes: 50}}
	d := NewDaemon(man, stats, nil, nil, nil)

	report := d.Status()
	assert.Equal(t, "wlan0", report.Interface)
	assert.True(t, report.Radio)
	assert.True(t, report.Connected)
	assert.Equal(t, "HomeNet", report.SSID)
	require.NotNil(t, report.Stats)
	assert.Equal(t, uint64(100), report.Stats.RxBytes)
}

func TestDaemonStatusDegraded(t *testing.T) {
	man := newFakeManager()
	man.radio.err = errors.New("tool missing")
	stats := fakeStats{err: errors.New("no counters")}
	d := NewDaemon(man, stats, nil, nil, nil)

	// status stays best-effort when the host tooling misbehaves
	report := d.Status()
	assert.False(t, report.Radio)
	assert.False(t, report.Connected)
	assert.Nil(t, report.Stats)
}

func TestDaemonHistoryDisabled(t *testing.T) {
	d := NewDaemon(newFakeManager(), nil, nil, nil, nil)

	report, err := d.History(10)
	require.NoError(t, err)
	assert.Empty(t, report.Events)
	assert.Empty(t, report.Scans)
	assert.NotNil(t, report.Events)
	assert.NotNil(t, report.Scans)
}

func TestDaemonInterfaces(t *testing.T) {
	d := NewDaemon(newFakeManager(), nil, nil, nil, nil)

	infos, err := d.Interfaces()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "wlan0", infos[0].Name)
}

func TestDaemonBroadcastNeverBlocks(t *testing.T) {
	d := NewDaemon(newFakeManager(), nil, nil, nil, nil)

	// nobody is draining Changes, overflow must be dropped not block
	for i := 0; i < 40; i++ {
		d.broadcast(Change{Type: "scan"})
	}
	assert.Len(t, d.Changes, 16)
}
