package cmd

import (
	"fmt"

	"github.com/HJ-nkh/frameanalysis/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of frameanalysis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frameanalysis v%s\n", version.Version)
		fmt.Println("Eurocode 2D planar frame analysis tool")

		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
