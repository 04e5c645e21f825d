package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the wireless interfaces on this host",
	Run: func(cmd *cobra.Command, args []string) {
		man, err := newManager(cmd)
		if err != nil {
			log.Printf("Failed to set up wifi manager: %v", err)
			os.Exit(1)
		}

		infos, err := man.Interfaces()
		if err != nil {
			log.Printf("Failed to list wireless interfaces: %v", err)
			os.Exit(1)
		}

		log.Println("Wireless interfaces:")
		for _, info := range infos {
			line := " - " + info.Name
			if info.MAC != "" {
				line += " (" + info.MAC + ")"
			}
			if info.Type != "" {
				line += " " + info.Type
			}
			log.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
