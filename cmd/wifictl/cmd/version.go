package cmd

import (
	"fmt"

	"github.com/dogeorg/wifictl/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show wifictl version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetVersionInfo()

		fmt.Printf("Release: %s\n", info.Release)
		fmt.Printf("Git: %s\n", info.Git.Commit)
		fmt.Printf("Dirty: %t\n", info.Git.Dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
