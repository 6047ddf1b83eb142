package app

import (
	"fmt"
	"time"

	"go-fps-factory/internal/config"
	"go-fps-factory/internal/defs"
	"go-fps-factory/internal/persistence"
	"go-fps-factory/pkg/logger"
)

// LoadOptions builds Options from the command-line settings every client
// shares. Empty paths keep the built-in defaults; an empty savePath keeps
// progress in memory only. A zero seed picks one from the clock.
func LoadOptions(dataDir, rulesPath, savePath string, seed int64, log *logger.Logger) (Options, error) {
	opts := Options{Logger: log, Seed: seed}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if dataDir != "" {
		lib, err := defs.LoadLibrary(dataDir)
		if err != nil {
			return opts, fmt.Errorf("failed to load definitions: %w", err)
		}
		if err := lib.Validate(); err != nil {
			return opts, err
		}
		opts.Library = lib
	}

	if rulesPath != "" {
		rules, err := config.LoadRules(rulesPath)
		if err != nil {
			return opts, err
		}
		opts.Rules = &rules
	}

	if savePath != "" {
		store, err := persistence.OpenFileStore(savePath)
		if err != nil {
			log.Warn("save file %s unusable, starting fresh: %v", savePath, err)
		} else {
			opts.Store = store
		}
	}
	return opts, nil
}
