package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/dogeorg/wifictl/pkg/system"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show radio state, the in-use network and traffic counters",
	Run: func(cmd *cobra.Command, args []string) {
		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}

		fmt.Printf("Interface: %s\n", man.Interface())

		enabled, err := man.Radio().Enabled()
		if err != nil {
			log.Printf("Failed to read radio state: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Radio enabled: %t\n", enabled)

		// the platform tool marks the in-use network in its scan output
		if networks, err := man.Scan(); err == nil {
			for _, n := range networks {
				if n.InUse {
					fmt.Printf("In use: %s (channel %s, signal %s)\n", n.SSID, n.Channel, n.Signal)
				}
			}
		}

		if stats, err := system.NewNetStats().InterfaceStats(man.Interface()); err == nil {
			fmt.Printf("Traffic: rx %d bytes / tx %d bytes\n", stats.RxBytes, stats.TxBytes)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
