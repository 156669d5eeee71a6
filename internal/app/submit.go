package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textsentiment/internal/output"
)

var submitCmd = &cobra.Command{
	Use:   "submit [text...]",
	Short: "Analyze text and store the result",
	Long: `Strip digits and stopwords from the text, score it with VADER and store
the original text, processed text and sentiment score.

Text is taken from the arguments, joined with spaces. With no arguments it
is read from stdin. Empty text is ignored and nothing is stored.`,
	Example: `  textsentiment submit "I love this product 123!!!"
  cat review.txt | textsentiment submit`,
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	text, err := readSubmitText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	a, st, err := openAnalyzer(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	res, err := a.Submit(cmd.Context(), text)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, output.RenderResultHeading(res.SentimentScore))
	fmt.Fprint(out, output.RenderScoreTable(res.Scores))
	fmt.Fprintf(out, "\nOverall: %s\n\n", res.Scores.Label())
	fmt.Fprintln(out, "Sentiment score and text stored in the database!")
	return nil
}

// readSubmitText joins args, or reads r when there are none. A single
// trailing newline from stdin is dropped.
func readSubmitText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
