package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serve the directory as JSON endpoints under /api.

Also exposes /healthz and, when server.metrics_enabled is set, Prometheus
metrics at /metrics.

Examples:
  researchhub serve
  researchhub serve --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveOpts struct {
	host string
	port int
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveOpts.host, "host", "", "Listen host (default: server.host)")
	serveCmd.Flags().IntVar(&serveOpts.port, "port", 0, "Listen port (default: server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if serveOpts.host != "" {
		sess.cfg.Server.Host = serveOpts.host
	}
	if serveOpts.port != 0 {
		sess.cfg.Server.Port = serveOpts.port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := sess.cfg.ServerAddr()
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving research-connect API on http://%s\n", addr)

	server := api.New(sess.service, sess.logger)
	if err := server.ListenAndServe(ctx, addr); err != nil && err != context.Canceled {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
