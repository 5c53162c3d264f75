package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"dealrisk-mcp/internal/analysis"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath      string
	LogDir        string
	TemplatesPath string
	HTTPAddr      string
	Analysis      analysis.Defaults
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	// 4. Analysis defaults: explicit values handed into every analysis call,
	// overridable per deployment.
	defaults := analysis.NewDefaults()
	defaults.Iterations = getEnvInt("MC_ITERATIONS", defaults.Iterations)
	defaults.MaxIterations = getEnvInt("MC_MAX_ITERATIONS", defaults.MaxIterations)
	defaults.HeatMapSteps = getEnvInt("HEATMAP_STEPS", defaults.HeatMapSteps)
	defaults.HistogramBins = getEnvInt("HISTOGRAM_BINS", defaults.HistogramBins)
	defaults.Distribution = analysis.Distribution(getEnv("MC_DISTRIBUTION", string(defaults.Distribution)))

	cfg := &AppConfig{
		DataPath:      dataPath,
		LogDir:        logDir,
		TemplatesPath: getEnv("TEMPLATES_PATH", ""),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		Analysis:      defaults,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
