package commands

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dealrisk-mcp/internal/web"
)

var httpAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve the analysis API over HTTP instead of Stdio",
	Run: func(cmd *cobra.Command, args []string) {
		addr := httpAddr
		if addr == "" {
			addr = cfg.HTTPAddr
		}

		api := web.NewWebAPI(log.Logger, svc, web.Config{
			Addr:            addr,
			ShutdownTimeout: 10 * time.Second,
		})
		if err := api.Start(); err != nil {
			log.Fatal().Err(err).Msg("HTTP server terminated")
		}
	},
}

func init() {
	httpCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (defaults to HTTP_ADDR or :8080)")
	rootCmd.AddCommand(httpCmd)
}
