package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the wireless interface",
	Run: func(cmd *cobra.Command, args []string) {
		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}

		ok, err := man.Disconnect()
		if err != nil {
			log.Printf("Failed to disconnect %s: %v", man.Interface(), err)
			os.Exit(1)
		}
		if !ok {
			log.Printf("%s did not disconnect", man.Interface())
			os.Exit(1)
		}

		log.Printf("Disconnected %s", man.Interface())
	},
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}
