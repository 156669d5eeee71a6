package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textsentiment/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List all stored entries",
	Long: `Print every stored entry in submission order: the original text, the
processed text and the sentiment score.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	a, st, err := openAnalyzer(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := a.Entries(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderEntryTable(entries))
	return nil
}
