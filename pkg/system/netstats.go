package system

import (
	"fmt"

	wifictl "github.com/dogeorg/wifictl/pkg"
	"github.com/shirou/gopsutil/v4/net"
)

// NetStats reads cumulative interface counters from the host.
type NetStats struct{}

var _ wifictl.StatsReader = NetStats{}

func NewNetStats() NetStats {
	return NetStats{}
}

func (t NetStats) InterfaceStats(name string) (*wifictl.InterfaceStats, error) {
	counters, err := net.IOCounters(true)
	if err != nil {
		return nil, err
	}
	for _, c := range counters {
		if c.Name == name {
			return &wifictl.InterfaceStats{
				RxBytes:   c.BytesRecv,
				TxBytes:   c.BytesSent,
				RxPackets: c.PacketsRecv,
				TxPackets: c.PacketsSent,
			}, nil
		}
	}
	return nil, fmt.Errorf("no counters for interface %s", name)
}
