package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var radioCmd = &cobra.Command{
	Use:   "radio on|off|status",
	Short: "Control the wifi radio soft kill switch",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}
		radio := man.Radio()

		switch args[0] {
		case "on":
			if err := radio.TurnOn(); err != nil {
				log.Printf("Failed to turn the radio on: %v", err)
				os.Exit(1)
			}
			log.Printf("Radio on")
		case "off":
			if err := radio.TurnOff(); err != nil {
				log.Printf("Failed to turn the radio off: %v", err)
				os.Exit(1)
			}
			log.Printf("Radio off")
		case "status":
			enabled, err := radio.Enabled()
			if err != nil {
				log.Printf("Failed to read radio state: %v", err)
				os.Exit(1)
			}
			fmt.Printf("Radio enabled: %t\n", enabled)
		default:
			log.Printf("Unknown radio action %q, want on, off or status", args[0])
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(radioCmd)
}
