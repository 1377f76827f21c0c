// Command simulate runs the village engine offline against an in-memory
// store. It founds the seed villages, advances the simulation day by day and
// prints a chronicle summary. Useful for balancing event weights and
// production rates without a database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aldermoor/villageforge/internal/config"
	"github.com/aldermoor/villageforge/internal/domain"
	"github.com/aldermoor/villageforge/internal/repository"
	"github.com/aldermoor/villageforge/internal/resource"
	"github.com/aldermoor/villageforge/internal/simulation"
	"github.com/aldermoor/villageforge/internal/villageevent"
)

func main() {
	days := flag.Int("days", 30, "number of simulated days to run")
	seedFile := flag.String("seeds", config.ConfigPathVillageSeeds, "path to the village seed file")
	schemaFile := flag.String("schema", config.SchemaPathVillageSeeds, "path to the seed schema")
	verbose := flag.Bool("v", false, "log every resolved event")
	flag.Parse()

	// Quiet structured logging unless -v is set
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*days, *seedFile, *schemaFile); err != nil {
		fmt.Fprintln(os.Stderr, "simulate:", err)
		os.Exit(1)
	}
}

func run(days int, seedFile, schemaFile string) error {
	ctx := context.Background()

	seeds, err := config.LoadVillageSeeds(seedFile, schemaFile)
	if err != nil {
		return fmt.Errorf("load seeds: %w", err)
	}

	store := repository.NewMemory()
	resources := resource.NewService(nil)
	events := villageevent.NewService(resources, nil, nil, nil)
	sim := simulation.NewService(store, resources, events, nil, nil, nil)

	var ids []string
	for _, seed := range seeds {
		village, err := sim.CreateVillage(ctx, seed.Config())
		if err != nil {
			return fmt.Errorf("found %q: %w", seed.Name, err)
		}
		if len(seed.TradeRoutes) > 0 {
			village.TradeRoutes = seed.TradeRoutes
			if err := store.SaveVillage(ctx, &village); err != nil {
				return fmt.Errorf("attach routes to %q: %w", seed.Name, err)
			}
		}
		ids = append(ids, village.ID)
		fmt.Printf("Founded %s (%s, population %d)\n", village.Name, village.Location, village.Population.Total)
	}

	totals := make(map[string]*tally, len(ids))
	for _, id := range ids {
		totals[id] = &tally{}
	}

	for day := 1; day <= days; day++ {
		for _, id := range ids {
			result, err := sim.Tick(ctx, id, 0)
			if err != nil {
				return fmt.Errorf("day %d, village %s: %w", day, id, err)
			}

			t := totals[id]
			t.events += len(result.Generated)
			t.crises += len(result.Crises)
			if result.CrisisLevel > t.peakCrisis {
				t.peakCrisis = result.CrisisLevel
			}
		}
	}

	fmt.Printf("\nAfter %d days:\n", days)
	for _, id := range ids {
		village, err := sim.GetVillage(ctx, id)
		if err != nil {
			return err
		}
		t := totals[id]

		fmt.Printf("\n%s (%s)\n", village.Name, village.Season)
		fmt.Printf("  population %d, happiness %.0f, stability %.0f, prosperity %.0f\n",
			village.Population.Total, village.Happiness, village.Stability, village.Prosperity)
		fmt.Printf("  events %d, crises %d, peak crisis level %.2f\n", t.events, t.crises, t.peakCrisis)
		fmt.Printf("  stocks: %s\n", stockSummary(village))

		history, err := sim.GetHistory(ctx, id, 5)
		if err != nil {
			return err
		}
		for _, entry := range history {
			fmt.Printf("    %s: %s (%s)\n", entry.ResolvedAt.Format("2006-01-02"), entry.Title, entry.Outcome)
		}
	}

	return nil
}

type tally struct {
	events     int
	crises     int
	peakCrisis float64
}

// stockSummary prints the staples in a fixed order so runs are comparable.
func stockSummary(v domain.Village) string {
	staples := []domain.ResourceType{
		domain.ResourceFood,
		domain.ResourceWater,
		domain.ResourceWood,
		domain.ResourceGold,
	}
	out := ""
	for i, rt := range staples {
		if i > 0 {
			out += ", "
		}
		amount := 0.0
		if stock, ok := v.Resources.Stocks[rt]; ok {
			amount = stock.Current
		}
		out += fmt.Sprintf("%s %.0f", rt, amount)
	}
	return out
}
