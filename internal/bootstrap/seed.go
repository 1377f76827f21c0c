package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aldermoor/villageforge/internal/config"
	"github.com/aldermoor/villageforge/internal/repository"
	"github.com/aldermoor/villageforge/internal/simulation"
)

// SeedVillages founds the villages described in the seed config if they do
// not already exist. Seeds are matched by name, so restarting the server
// never duplicates a village. Trade routes from the seed are attached after
// creation since founding only covers demographics and starting stocks.
func SeedVillages(ctx context.Context, sim simulation.Service, store repository.Store) error {
	slog.Info(LogMsgSeedingVillages)

	seeds, err := config.LoadVillageSeeds(config.ConfigPathVillageSeeds, config.SchemaPathVillageSeeds)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadVillageSeeds, err)
	}

	existing, err := existingVillageNames(ctx, sim)
	if err != nil {
		return err
	}

	seeded := 0
	for _, seed := range seeds {
		if existing[seed.Name] {
			slog.Info(LogMsgVillageAlreadyExists, "name", seed.Name)
			continue
		}

		village, err := sim.CreateVillage(ctx, seed.Config())
		if err != nil {
			return fmt.Errorf("%s %q: %w", ErrMsgFailedSeedVillage, seed.Name, err)
		}

		// Founding covers demographics and stocks; routes come from the seed.
		if len(seed.TradeRoutes) > 0 {
			village.TradeRoutes = seed.TradeRoutes
			if err := store.SaveVillage(ctx, &village); err != nil {
				return fmt.Errorf("%s %q: %w", ErrMsgFailedSeedVillage, seed.Name, err)
			}
		}

		slog.Info(LogMsgVillageSeeded,
			"name", seed.Name,
			"village_id", village.ID,
			"location", village.Location,
			"routes", len(seed.TradeRoutes))
		seeded++
	}

	slog.Info(LogMsgVillagesSeeded, "seeded", seeded, "skipped", len(seeds)-seeded)
	return nil
}

func existingVillageNames(ctx context.Context, sim simulation.Service) (map[string]bool, error) {
	ids, err := sim.ListVillages(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(ids))
	for _, id := range ids {
		village, err := sim.GetVillage(ctx, id)
		if err != nil {
			return nil, err
		}
		names[village.Name] = true
	}
	return names, nil
}
