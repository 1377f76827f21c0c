package config

const (
	// Configuration file paths
	ConfigPathVillageSeeds = "configs/villages.json"

	// Schema file paths
	SchemaPathVillageSeeds = "schemas/village_seeds.schema.json"
)
