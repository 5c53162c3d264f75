package engine

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"

	"dealrisk-mcp/internal/templates"
)

type GeneratorConfig struct {
	Market string // "balanced", "hot" or "distressed"
	Count  int
	Seed   int64
}

// marketShift skews the stock assumptions toward a regime: hot markets carry
// higher prices and lower cap rates, distressed markets the opposite.
type marketShift struct {
	price   float64
	rent    float64
	vacancy float64
	capRate float64
}

func shiftFor(market string) (marketShift, error) {
	switch market {
	case "balanced", "":
		return marketShift{price: 1.0, rent: 1.0, vacancy: 1.0, capRate: 1.0}, nil
	case "hot":
		return marketShift{price: 1.15, rent: 1.08, vacancy: 0.7, capRate: 0.85}, nil
	case "distressed":
		return marketShift{price: 0.8, rent: 0.92, vacancy: 1.6, capRate: 1.2}, nil
	default:
		return marketShift{}, fmt.Errorf("unknown market %q", market)
	}
}

// Generate produces Count jittered variants of every stock template under the
// requested market regime. The same seed reproduces the same fixtures.
func Generate(cfg GeneratorConfig) ([]templates.Template, error) {
	shift, err := shiftFor(cfg.Market)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	count := cfg.Count
	if count <= 0 {
		count = 1
	}

	var out []templates.Template
	for _, stock := range templates.NewStore("").List() {
		for i := 0; i < count; i++ {
			t := stock
			t.PropertyType = fmt.Sprintf("%s_%s_%d", stock.PropertyType, cfg.Market, i+1)
			t.Label = fmt.Sprintf("%s (%s #%d)", stock.Label, cfg.Market, i+1)

			base := stock.BaseInputs.Clone()
			jitter := func(v float64) float64 { return v * (0.95 + 0.1*rng.Float64()) }

			if v, ok := base["purchase_price"]; ok {
				base["purchase_price"] = jitter(v * shift.price)
			}
			for _, key := range []string{"gross_rent_monthly", "other_income_monthly", "after_repair_value"} {
				if v, ok := base[key]; ok {
					base[key] = jitter(v * shift.rent)
				}
			}
			if v, ok := base["vacancy_rate"]; ok {
				base["vacancy_rate"] = jitter(v * shift.vacancy)
			}
			if v, ok := base["exit_cap_rate"]; ok {
				base["exit_cap_rate"] = jitter(v * shift.capRate)
			}
			t.BaseInputs = base
			out = append(out, t)
		}
	}
	return out, nil
}

// Save writes one YAML file per template so the directory can serve as
// TEMPLATES_PATH for the server.
func Save(dir string, fixtures []templates.Template) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, t := range fixtures {
		data, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshal template %s: %w", t.PropertyType, err)
		}
		path := filepath.Join(dir, t.PropertyType+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
