package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textsentiment/internal/output"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe what textsentiment does",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), output.AboutText)
		return nil
	},
}
