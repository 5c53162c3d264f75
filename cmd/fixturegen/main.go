package main

import (
	"flag"
	"fmt"
	"os"

	"dealrisk-mcp/cmd/fixturegen/engine"
)

func main() {
	market := flag.String("market", "balanced", "Market regime to generate: balanced, hot, distressed")
	outDir := flag.String("out", "./.fixtures", "Output directory for template files")
	count := flag.Int("count", 5, "Number of deal templates to generate per property type")
	seed := flag.Int64("seed", 0, "Random seed (0 means time-based)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Market: *market,
		Count:  *count,
		Seed:   *seed,
	}

	fmt.Printf("Generating market '%s' (Count: %d) to %s...\n", cfg.Market, cfg.Count, *outDir)

	fixtures, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate fixtures: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Save(*outDir, fixtures); err != nil {
		fmt.Printf("Failed to save fixtures: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
