package wifictl

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultHistoryLimit = 50

type HistoryEvent struct {
	At     time.Time `json:"at"`
	Kind   string    `json:"kind"` // connect, disconnect, radio_on, radio_off
	SSID   string    `json:"ssid,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

type HistoryScan struct {
	At        time.Time `json:"at"`
	Interface string    `json:"interface"`
	Network
}

type HistoryReport struct {
	Events []HistoryEvent `json:"events"`
	Scans  []HistoryScan  `json:"scans"`
}

// StoreManager keeps the scan and event history in a local sqlite
// database. All writers share WriteMu; sqlite handles one writer at a
// time and we would rather queue than error.
type StoreManager struct {
	DBPath  string
	DB      *sql.DB
	WriteMu sync.Mutex
}

func NewStoreManager(dbPath string) (*StoreManager, error) {
	sm := &StoreManager{DBPath: dbPath}
	if err := sm.OpenDB(); err != nil {
		return nil, err
	}
	if err := sm.initSchema(); err != nil {
		sm.DB.Close()
		return nil, err
	}
	return sm, nil
}

func (sm *StoreManager) OpenDB() error {
	db, err := sql.Open("sqlite3", sm.DBPath)
	if err != nil {
		return fmt.Errorf("opening history db: %w", err)
	}
	sm.DB = db
	return nil
}

func (sm *StoreManager) CloseDB() error {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	if sm.DB == nil {
		return nil
	}
	return sm.DB.Close()
}

func (sm *StoreManager) initSchema() error {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	_, err := sm.DB.Exec(`
        CREATE TABLE IF NOT EXISTS events (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            at INTEGER NOT NULL,
            kind TEXT NOT NULL,
            ssid TEXT NOT NULL DEFAULT '',
            detail TEXT NOT NULL DEFAULT ''
        );
        CREATE TABLE IF NOT EXISTS scans (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            at INTEGER NOT NULL,
            iface TEXT NOT NULL,
            ssid TEXT NOT NULL DEFAULT '',
            bssid TEXT NOT NULL DEFAULT '',
            channel TEXT NOT NULL DEFAULT '',
            signal TEXT NOT NULL DEFAULT '',
            security TEXT NOT NULL DEFAULT '',
            in_use INTEGER NOT NULL DEFAULT 0
        );
    `)
	if err != nil {
		return fmt.Errorf("creating history schema: %w", err)
	}
	return nil
}

func (sm *StoreManager) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		started <- true
		<-stop
		// take the write lock so an in-flight insert drains before
		// the handle closes
		sm.WriteMu.Lock()
		defer sm.WriteMu.Unlock()
		sm.DB.Close()
		stopped <- true
	}()
	return nil
}

func (sm *StoreManager) RecordEvent(kind, ssid, detail string) error {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	_, err := sm.DB.Exec(
		"INSERT INTO events (at, kind, ssid, detail) VALUES (?, ?, ?, ?)",
		time.Now().Unix(), kind, ssid, detail,
	)
	return err
}

// RecordScan writes every network of one scan with a shared timestamp.
func (sm *StoreManager) RecordScan(iface string, networks []Network) error {
	sm.WriteMu.Lock()
	defer sm.WriteMu.Unlock()

	tx, err := sm.DB.Begin()
	if err != nil {
		return err
	}
	at := time.Now().Unix()
	for _, n := range networks {
		inUse := 0
		if n.InUse {
			inUse = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO scans (at, iface, ssid, bssid, channel, signal, security, in_use) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			at, iface, n.SSID, n.BSSID, n.Channel, n.Signal, n.Security, inUse,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (sm *StoreManager) RecentEvents(limit int) ([]HistoryEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := sm.DB.Query(
		"SELECT at, kind, ssid, detail FROM events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []HistoryEvent{}
	for rows.Next() {
		var at int64
		var e HistoryEvent
		if err := rows.Scan(&at, &e.Kind, &e.SSID, &e.Detail); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

func (sm *StoreManager) RecentScans(limit int) ([]HistoryScan, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	rows, err := sm.DB.Query(
		"SELECT at, iface, ssid, bssid, channel, signal, security, in_use FROM scans ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := []HistoryScan{}
	for rows.Next() {
		var at int64
		var inUse int
		var s HistoryScan
		if err := rows.Scan(&at, &s.Interface, &s.SSID, &s.BSSID, &s.Channel, &s.Signal, &s.Security, &inUse); err != nil {
			return nil, err
		}
		s.At = time.Unix(at, 0).UTC()
		s.InUse = inUse != 0
		scans = append(scans, s)
	}
	return scans, rows.Err()
}
