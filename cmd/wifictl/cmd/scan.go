package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for visible wifi networks",
	Run: func(cmd *cobra.Command, args []string) {
		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}

		networks, err := man.Scan()
		if err != nil {
			log.Printf("Failed to scan on %s: %v", man.Interface(), err)
			os.Exit(1)
		}

		fmt.Printf("%-2s %-24s %-18s %-5s %-7s %s\n", "", "SSID", "BSSID", "CHAN", "SIGNAL", "SECURITY")
		for _, n := range networks {
			inUse := ""
			if n.InUse {
				inUse = "*"
			}
			fmt.Printf("%-2s %-24s %-18s %-5s %-7s %s\n", inUse, n.SSID, n.BSSID, n.Channel, n.Signal, n.Security)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
