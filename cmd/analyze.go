package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/HJ-nkh/frameanalysis/internal/analysis"
	"github.com/HJ-nkh/frameanalysis/internal/entities"
	"github.com/HJ-nkh/frameanalysis/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeInputPath  string
	analyzeOutputPath string
	analyzeASCII      string

	analyzeProjectNumber     string
	analyzeCC                string
	analyzeSelfweight        bool
	analyzeNLevelsAbove      int
	analyzeRobustFactorOnOff bool
	analyzeDefCritSteel      int
	analyzeDefCritWood1      int
	analyzeDefCritWood2      int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full frame analysis pipeline on a declared entity set",
	Long: `Run geometry building, frame solving, load-combination enumeration
and Eurocode code checks on a JSON entity-set file, and print the
governing utilization ratio per member per limit state.

The input file is a JSON document with "nodes", "members", "supports",
"pointLoads", "distributedLoads" and "momentLoads" maps keyed by id, per
the declarative entity-set schema.

Examples:
  frameanalysis analyze --in frame.json
  frameanalysis analyze --in frame.json --out result.json
  frameanalysis analyze --in frame.json --ascii "ULS:m1:Komb. 1. Nyttelast dominerende - Tyngde, generelt - Ugunstig - (6.10b)"`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInputPath, "in", "", "Path to the entity-set JSON file [required]")
	analyzeCmd.Flags().StringVar(&analyzeOutputPath, "out", "", "Optional path to write the full JSON result")
	analyzeCmd.Flags().StringVar(&analyzeASCII, "ascii", "", "Optional \"limitState:memberId:combination\" moment-diagram preview")

	analyzeCmd.Flags().StringVar(&analyzeProjectNumber, "project", "", "Project number")
	analyzeCmd.Flags().StringVar(&analyzeCC, "cc", "CC2", "Consequence class (CC1, CC2 or CC3)")
	analyzeCmd.Flags().BoolVar(&analyzeSelfweight, "selfweight", true, "Include member selfweight as a load case")
	analyzeCmd.Flags().IntVar(&analyzeNLevelsAbove, "n-levels-above", 0, "Number of levels above, for imposed-load reduction")
	analyzeCmd.Flags().BoolVar(&analyzeRobustFactorOnOff, "robust-factor", false, "Apply the robustness partial-factor multiplier")
	analyzeCmd.Flags().IntVar(&analyzeDefCritSteel, "def-crit-steel", 300, "Default steel deflection criterion (L/n)")
	analyzeCmd.Flags().IntVar(&analyzeDefCritWood1, "def-crit-wood-1", 300, "Default timber instantaneous deflection criterion (L/n)")
	analyzeCmd.Flags().IntVar(&analyzeDefCritWood2, "def-crit-wood-2", 200, "Default timber finished deflection criterion (L/n)")

	analyzeCmd.MarkFlagRequired("in")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(analyzeInputPath)
	if err != nil {
		return fmt.Errorf("reading entity set: %w", err)
	}
	var es entities.EntitySet
	if err := json.Unmarshal(raw, &es); err != nil {
		return fmt.Errorf("parsing entity set: %w", err)
	}

	settings := entities.Settings{
		ProjectNumber:     analyzeProjectNumber,
		CC:                entities.ConsequenceClass(analyzeCC),
		SelfweightOnOff:   analyzeSelfweight,
		NLevelsAbove:      analyzeNLevelsAbove,
		RobustFactorOnOff: analyzeRobustFactorOnOff,
		DefCritSteel:      analyzeDefCritSteel,
		DefCritWood1:      analyzeDefCritWood1,
		DefCritWood2:      analyzeDefCritWood2,
	}

	result, err := analysis.Run(&es, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	fmt.Println()
	fmt.Println(report.Summary(result))

	if analyzeASCII != "" {
		ls, memberID, comb, perr := parseASCIIArg(analyzeASCII)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", perr)
		} else {
			diagram, derr := report.MomentDiagram(result, ls, memberID, comb)
			if derr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", derr)
			} else {
				fmt.Println(diagram)
			}
		}
	}

	if analyzeOutputPath != "" {
		out, merr := json.MarshalIndent(result, "", "  ")
		if merr != nil {
			return fmt.Errorf("encoding result: %w", merr)
		}
		if werr := os.WriteFile(analyzeOutputPath, out, 0o644); werr != nil {
			return fmt.Errorf("writing result: %w", werr)
		}
		fmt.Printf("Wrote %s\n", analyzeOutputPath)
	}

	return nil
}

func parseASCIIArg(s string) (ls, memberID, comb string, err error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("--ascii expects \"limitState:memberId:combination\", got %q", s)
	}
	return parts[0], parts[1], parts[2], nil
}
