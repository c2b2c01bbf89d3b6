package main

import (
	"flag"
	"log"
	"os"

	"chosenoffset.com/platformgen/atlas"
	"chosenoffset.com/platformgen/platform"
	"chosenoffset.com/platformgen/progress"
	"chosenoffset.com/platformgen/tilegrid"
)

func main() {
	configPath := flag.String("config", "data/platforms.yaml", "generator config (YAML)")
	level := flag.Int("level", 0, "level to generate (0 = use config)")
	seed := flag.Int64("seed", 0, "random seed (0 = use config)")
	atlasPath := flag.String("atlas", "", "atlas JSON to resolve tiles from (overrides config)")
	flag.Parse()

	config, err := platform.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *level != 0 {
		config.Level = *level
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *atlasPath != "" {
		config.AtlasPath = *atlasPath
	}
	if len(config.Regions) == 0 {
		log.Printf("No regions in %s, using the demo course", *configPath)
		config.Regions = demoRegions()
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	tracker, err := progress.New(config.Level)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}

	catalog, err := loadCatalog(config)
	if err != nil {
		log.Fatalf("Failed to load tile catalog: %v", err)
	}

	store := tilegrid.NewSparseStore()
	writer := tilegrid.NewWriter(store, catalog)
	generator, err := platform.NewGenerator(writer, tracker, config)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	log.Printf("Generating level %d: %d platforms", generator.CurrentLevel(), len(config.Regions))
	for _, plan := range config.Regions {
		generator.Decorate(plan)
	}

	log.Printf("Placed %d activators in %d iterations (budget %d)",
		generator.ActivatorsPlaced(), generator.ActivatorIterations(), generator.MaxActivators())
	if generator.ActivatorsPlaced() > generator.MaxActivators() {
		log.Printf("Warning: activator budget exceeded (%d > %d); the budget is not enforced",
			generator.ActivatorsPlaced(), generator.MaxActivators())
	}

	if err := dump(os.Stdout, store, writer); err != nil {
		log.Fatal(err)
	}
}

func loadCatalog(config *platform.Config) (tilegrid.Catalog, error) {
	if config.AtlasPath == "" {
		return tilegrid.NewNamedCatalog(config.Tiles.ByKind()), nil
	}

	a, err := atlas.LoadAtlas(config.AtlasPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded atlas %s (%d tiles)", a.Config.Name, len(a.Config.Tiles))
	return atlas.NewCatalog(a, config.Tiles.ByKind(), log.Default()), nil
}

// demoRegions is a short course of platforms stepping up to the right
func demoRegions() []platform.RegionPlan {
	cracked := tilegrid.Cracked
	return []platform.RegionPlan{
		{Width: 6, Height: 3, X: 0, Y: 0},
		{Width: 4, Height: 2, X: 9, Y: 2},
		{Width: 5, Height: 2, X: 16, Y: 4, Fill: &cracked},
		{Width: 7, Height: 3, X: 24, Y: 3},
	}
}
