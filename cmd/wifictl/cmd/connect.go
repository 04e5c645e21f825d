package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect <ssid>",
	Short: "Connect to a wifi network",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ssid := args[0]
		password, _ := cmd.Flags().GetString("password")

		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}

		ok, err := man.Connect(ssid, password)
		if err != nil {
			log.Printf("Failed to connect to %s: %v", ssid, err)
			os.Exit(1)
		}
		if !ok {
			log.Printf("%s did not accept the connection", ssid)
			os.Exit(1)
		}

		log.Printf("Connected to %s on %s", ssid, man.Interface())
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().StringP("password", "p", "", "Passphrase for the network")
}
