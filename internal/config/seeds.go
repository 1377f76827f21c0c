package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/aldermoor/villageforge/internal/domain"
)

// VillageSeed is one village definition from the seed file: the founding
// config plus any preconfigured trade routes.
type VillageSeed struct {
	Name            string                          `json:"name"`
	Location        string                          `json:"location"`
	Population      domain.Population               `json:"population"`
	StartingAmounts map[domain.ResourceType]float64 `json:"starting_amounts,omitempty"`
	TradeRoutes     []domain.TradeRoute             `json:"trade_routes,omitempty"`
}

// Config converts the seed into a founding VillageConfig.
func (s VillageSeed) Config() domain.VillageConfig {
	return domain.VillageConfig{
		Name:            s.Name,
		Location:        s.Location,
		Population:      s.Population,
		StartingAmounts: s.StartingAmounts,
	}
}

type seedFile struct {
	Villages []VillageSeed `json:"villages"`
}

// LoadVillageSeeds reads the seed file, validates it against its JSON schema
// and returns the parsed seeds.
func LoadVillageSeeds(seedPath, schemaPath string) ([]VillageSeed, error) {
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read village seeds: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile village seed schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid village seed JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("village seeds failed schema validation: %w", err)
	}

	var file seedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse village seeds: %w", err)
	}
	return file.Villages, nil
}
