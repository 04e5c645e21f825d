package cmd

import (
	"os"

	wifictl "github.com/dogeorg/wifictl/pkg"
	"github.com/dogeorg/wifictl/pkg/system/network"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wifictl",
	Short: "wifictl drives the host's wifi through nmcli or netsh",
	Long:  `wifictl drives the host's wifi through nmcli or netsh`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("iface", "", "Wireless interface to drive (default: first discovered)")
	rootCmd.PersistentFlags().String("platform", "", "Backend to use: linux or windows (default: host OS)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log tool output while parsing")
}

// newManager builds the same manager the daemon runs, straight from the
// persistent flags. No daemon needs to be running.
func newManager(cmd *cobra.Command) (wifictl.WifiManager, error) {
	iface, _ := cmd.Flags().GetString("iface")
	platform, _ := cmd.Flags().GetString("platform")
	return network.NewWifiManager(wifictl.NewHostRunner(), iface, platform)
}
