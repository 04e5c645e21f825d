package wifictl

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *StoreManager {
	t.Helper()
	store, err := NewStoreManager(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.CloseDB() })
	return store
}

func TestStoreEvents(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordEvent("connect", "HomeNet", ""))
	require.NoError(t, store.RecordEvent("disconnect", "HomeNet", "user request"))

	events, err := store.RecentEvents(0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// newest first
	assert.Equal(t, "disconnect", events[0].Kind)
	assert.Equal(t, "user request", events[0].Detail)
	assert.Equal(t, "connect", events[1].Kind)
	assert.Equal(t, "HomeNet", events[1].SSID)

	for _, e := range events {
		assert.WithinDuration(t, time.Now().UTC(), e.At, time.Minute)
	}
}

func TestStoreEventsLimit(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordEvent("radio_on", "", ""))
	require.NoError(t, store.RecordEvent("connect", "NetA", ""))
	require.NoError(t, store.RecordEvent("connect", "NetB", ""))

	events, err := store.RecentEvents(2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "NetB", events[0].SSID)
	assert.Equal(t, "NetA", events[1].SSID)
}

func TestStoreScans(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordScan("wlan0", []Network{
		{SSID: "HomeNet", BSSID: "AA:BB:CC:DD:EE:FF", Channel: "11", Signal: "72", Security: "WPA2", InUse: true},
		{SSID: "OpenThing", BSSID: "22:33:44:55:66:77", Channel: "1", Signal: "38"},
	}))

	scans, err := store.RecentScans(0)
	require.NoError(t, err)
	require.Len(t, scans, 2)

	// one scan shares one timestamp
	assert.Equal(t, scans[0].At, scans[1].At)

	// newest first, so insertion order is reversed
	assert.Equal(t, "OpenThing", scans[0].SSID)
	assert.False(t, scans[0].InUse)
	assert.Equal(t, "HomeNet", scans[1].SSID)
	assert.Equal(t, "wlan0", scans[1].Interface)
	assert.True(t, scans[1].InUse)
}

func TestStoreEmpty(t *testing.T) {
	store := newTestStore(t)

	events, err := store.RecentEvents(0)
	require.NoError(t, err)
	assert.Empty(t, events)

	scans, err := store.RecentScans(0)
	require.NoError(t, err)
	assert.Empty(t, scans)
}
