package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dealrisk-mcp/internal/config"
	"dealrisk-mcp/internal/logging"
	"dealrisk-mcp/internal/mcp"
	"dealrisk-mcp/internal/service"
	"dealrisk-mcp/internal/templates"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
	svc     *service.Service
)

var rootCmd = &cobra.Command{
	Use:   "dealrisk-mcp",
	Short: "DealRisk-MCP is a sensitivity and risk analysis MCP Server for real estate deals",
	Long: `A specialized MCP Server that stress-tests real estate deal underwriting:
tornado sensitivity rankings, two-way heat maps, Monte Carlo simulation,
scenario comparison and break-even boundary searches.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		store := templates.NewStore(cfg.TemplatesPath)
		svc = service.New(store, cfg.Analysis)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("DealRisk-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server, err := mcp.NewServer(svc)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize MCP server")
		}
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Stdio loop terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
