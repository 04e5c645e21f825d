package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	wifictl "github.com/dogeorg/wifictl/pkg"
	"github.com/dogeorg/wifictl/pkg/conductor"
	"github.com/dogeorg/wifictl/pkg/statefile"
	"github.com/dogeorg/wifictl/pkg/system"
	"github.com/dogeorg/wifictl/pkg/system/network"
	"github.com/dogeorg/wifictl/pkg/version"
)

type server struct {
	config wifictl.ServerConfig
}

func Server(config wifictl.ServerConfig) server {
	return server{config}
}

func (t server) Start() {
	log.Printf("Starting wifictld %s", version.GetVersionInfo().Release)

	/* ----------------------------------------------------------------------- */
	// Set up the manager that talks to the host's wifi tooling

	runner := wifictl.NewHostRunner()
	man, err := network.NewWifiManager(runner, t.config.Interface, t.config.Platform)
	if err != nil {
		log.Fatalf("Failed to set up wifi manager: %v", err)
	}
	log.Printf("Managing wireless interface %s", man.Interface())

	/* ----------------------------------------------------------------------- */
	// Load daemon state, mint an API token if we never had one

	if err := os.MkdirAll(t.config.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	state := statefile.New[wifictl.DaemonState](filepath.Join(t.config.DataDir, "state.gob"))
	s, _, err := state.Load()
	if err != nil {
		log.Fatalf("Failed to load daemon state: %v", err)
	}

	token := t.config.APIToken
	if token == "" {
		token = s.APIToken
	}
	if token == "" {
		token = wifictl.MintAPIToken()
		log.Printf("Minted new API token: %s", token)
	}
	if s.APIToken != token {
		s.APIToken = token
		if err := state.Save(s); err != nil {
			log.Fatalf("Failed to save daemon state: %v", err)
		}
	}
	t.config.APIToken = token

	/* ----------------------------------------------------------------------- */
	// Optional pieces: history store and connectivity probe

	var store *wifictl.StoreManager
	if t.config.HistoryDB != "" {
		store, err = wifictl.NewStoreManager(t.config.HistoryDB)
		if err != nil {
			log.Fatalf("Failed to open history store: %v", err)
		}
	}

	var probe wifictl.Prober
	if t.config.ProbeURL != "" {
		probe = system.NewConnectivityProbe(t.config.ProbeURL)
	}

	d := wifictl.NewDaemon(man, system.NewNetStats(), probe, store, state)

	/* ----------------------------------------------------------------------- */
	// External APIs: REST and the websocket change relay

	wsh := wifictl.NewWSRelay(d.Changes)
	rest := wifictl.RESTAPI(t.config, d, wsh)

	/* ----------------------------------------------------------------------- */
	// A conductor manages startup and shutdown of all the services

	var c *conductor.Conductor

	if t.config.Verbose {
		c = conductor.NewConductor(
			conductor.HookSignals(),
			conductor.Noisy(),
		)
	} else {
		c = conductor.NewConductor(
			conductor.HookSignals(),
		)
	}

	if store != nil {
		c.Service("History Store", store)
	}
	c.Service("Websocket Relay", wsh)
	if t.config.ScanInterval > 0 {
		c.Service("Scan Monitor", wifictl.NewScanMonitor(d, time.Duration(t.config.ScanInterval)*time.Second))
	}
	c.Service("REST API", rest)

	done := c.Start()

	if sent, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Printf("Failed to notify systemd: %v", err)
	} else if sent {
		log.Printf("Notified systemd we are ready")
	}
	log.Printf("Listening on %s:%d", t.config.Bind, t.config.Port)

	<-done
}
