package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textsentiment/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve submit and read-back over HTTP",
	Long: `Run a JSON HTTP server over the same database.

Endpoints:
  POST /api/entries   {"text": "..."}  analyze and store (204 for empty text)
  GET  /api/entries                    list stored entries
  GET  /api/scores                     scores in submission order
  GET  /api/about
  GET  /healthz

Stop with Ctrl+C.`,
	Example: `  textsentiment serve
  textsentiment serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: listen_addr from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, st, err := openAnalyzer(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	addr := serveAddr
	if addr == "" && cfg != nil {
		addr = cfg.ListenAddr
	}

	return server.New(a, logger).Start(ctx, addr)
}
