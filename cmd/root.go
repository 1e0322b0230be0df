package cmd

import (
	"fmt"
	"os"

	"github.com/HJ-nkh/frameanalysis/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frameanalysis",
	Short: "2D planar frame structural analysis",
	Long: `frameanalysis - Eurocode 2D planar frame analysis tool

A CLI tool for the limit-state analysis of 2D planar building frames
built from steel, timber and masonry members.

This tool helps structural engineers perform:
  - Linear elastic frame solving and load-combination enumeration
  - EC3 steel member checks (bending, shear, buckling, crippling, fire)
  - EC5 timber member checks (tension, compression, bending, shear, stability)
  - EC6 masonry member checks (N-M interaction, concentrated bearing)
  - Governing utilization-ratio reporting per member per limit state

All calculations follow EN 1990-1993/1995/1996 (Eurocode) provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   frameanalysis v%-41s║\n", version.Version)
		fmt.Println("  ║   Eurocode 2D planar frame analysis                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the limit-state analysis of 2D planar")
		fmt.Println("  building frames, following the Eurocodes.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Frame solving and ULS/SLS/ALS load-combination enumeration")
		fmt.Println("    • EC3 steel, EC5 timber and EC6 masonry member checks")
		fmt.Println("    • Governing utilization-ratio reporting per member")
		fmt.Println()
		fmt.Println("  Use 'frameanalysis --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
