// meshtool builds a triangular tessellation and answers distance and path
// queries on it.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/mundimonium/internal/config"
	"github.com/Faultbox/mundimonium/internal/logger"
)

func main() {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}
	command, args := args[0], args[1:]
	if command == "help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	m, err := buildMesh(cfg, logger.Named("tessellation"))
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("mesh ready",
		zap.String("layout", cfg.Mesh.Layout),
		zap.Int("vertices", m.tess.NumVertices()),
		zap.Int("faces", m.tess.NumFaces()))
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args))

	if err := run(context.Background(), os.Stdout, m, command, args); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - triangular tessellation utility

Usage:
  meshtool [flags] <command> [options]

Flags:
  -config <file>        Config file (default ./meshtool.yaml, or $MESHTOOL_CONFIG)
  -debug                Debug logging
  -layout <name>        lattice or icosphere
  -subdivisions <n>     Icosphere subdivisions
  -seed <n>             Terrain noise seed

Commands:
  info                          Show mesh statistics
  distance [-in unit] <f> [g]   Distances between points on adjacent faces
  path [-flat] <from> <to>      Cheapest face path between two faces
  check                         Audit adjacency and centroids

Examples:
  meshtool info
  meshtool -layout icosphere -subdivisions 3 check
  meshtool distance -in foot 12
  meshtool path 0 40`)
}
