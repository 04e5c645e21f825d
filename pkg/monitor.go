package wifictl

import (
	"context"
	"log"
	"time"
)

// ScanMonitor rescans on a fixed interval so websocket clients and the
// history store see networks come and go without anybody polling the
// REST surface.
type ScanMonitor struct {
	daemon   *Daemon
	interval time.Duration
}

func NewScanMonitor(daemon *Daemon, interval time.Duration) ScanMonitor {
	return ScanMonitor{daemon: daemon, interval: interval}
}

func (t ScanMonitor) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		ticker := time.NewTicker(t.interval)
		started <- true
	mainloop:
		for {
			select {
			case <-stop:
				ticker.Stop()
				break mainloop
			case <-ticker.C:
				networks, err := t.daemon.Scan()
				if err != nil {
					log.Printf("background scan failed: %v", err)
					continue
				}
				if len(networks) == 0 {
					log.Printf("background scan saw no networks")
				}
			}
		}
		stopped <- true
	}()
	return nil
}
