package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	wifictl "github.com/dogeorg/wifictl/pkg"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent connection events and scan results",
	Long: `Show recent connection events and scan results.
Reads the sqlite history database that wifictld writes; point --db at the
same path the daemon was started with.`,
	Run: func(cmd *cobra.Command, args []string) {
		dbPath, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("limit")

		if _, err := os.Stat(dbPath); err != nil {
			log.Printf("No history database at %s (is wifictld running with -history?)", dbPath)
			os.Exit(1)
		}

		store, err := wifictl.NewStoreManager(dbPath)
		if err != nil {
			log.Printf("Failed to open history store at %s: %v", dbPath, err)
			os.Exit(1)
		}
		defer store.CloseDB()

		events, err := store.RecentEvents(limit)
		if err != nil {
			log.Printf("Failed to read events: %v", err)
			os.Exit(1)
		}
		scans, err := store.RecentScans(limit)
		if err != nil {
			log.Printf("Failed to read scans: %v", err)
			os.Exit(1)
		}

		fmt.Println("Events:")
		for _, e := range events {
			fmt.Printf("  %s %-10s %s %s\n", e.At.Format(time.RFC3339), e.Kind, e.SSID, e.Detail)
		}
		fmt.Println("Scans:")
		for _, s := range scans {
			fmt.Printf("  %s %-12s %-24s %-18s signal %s\n",
				s.At.Format(time.RFC3339), s.Interface, s.SSID, s.BSSID, s.Signal)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("db", "./data/history.db", "Path to the history database")
	historyCmd.Flags().IntP("limit", "n", 0, "Max rows per section (default 50)")
}
