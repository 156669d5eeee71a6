package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textsentiment/internal/output"
)

var visualizeHeight int

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Chart sentiment scores over time",
	Long: `Draw a line chart of stored sentiment scores in submission order.
The y axis runs from 0 (negative) to 1 (positive).`,
	Example: `  textsentiment visualize
  textsentiment visualize --height 20`,
	RunE: runVisualize,
}

func init() {
	visualizeCmd.Flags().IntVar(&visualizeHeight, "height", 0, "chart height in rows (default: chart_height from config)")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	if visualizeHeight < 0 {
		return fmt.Errorf("invalid height: %d (must be positive)", visualizeHeight)
	}

	a, st, err := openAnalyzer(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	scores, err := a.Series(cmd.Context())
	if err != nil {
		return err
	}

	height := visualizeHeight
	if height == 0 && cfg != nil {
		height = cfg.ChartHeight
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderChart(scores, height))
	return nil
}
