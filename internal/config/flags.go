package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagLayout       = flag.String("layout", "", "Mesh layout (lattice or icosphere)")
	flagSubdivisions = flag.Int("subdivisions", -1, "Icosphere subdivisions")
	flagSeed         = flag.Int64("seed", 0, "Terrain noise seed")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLayout != "" {
		cfg.Mesh.Layout = *flagLayout
	}
	if *flagSubdivisions >= 0 {
		cfg.Mesh.Subdivisions = *flagSubdivisions
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
}
