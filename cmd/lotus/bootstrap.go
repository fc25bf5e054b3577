package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/storage/yamlfile"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/validation"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lotus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lotus-cli/internal/core/services"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// dataSubdir holds the database under the lotus home directory.
const dataSubdir = "data"

// bootstrap wires the driven adapters into the core services.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := newConfigStore(opts)
	if err != nil {
		return nil, nil, err
	}

	contacts := memory.NewContactStore()
	notes := memory.NewNoteStore()
	codec := yamlfile.NewCodec(true)

	var (
		snapshots driven.SnapshotStore
		dataDir   string
		store     *sqlite.Store
	)
	if !opts.Ephemeral {
		dataDir, err = resolveDataDir(opts.DataDir)
		if err != nil {
			return nil, nil, err
		}
		store, err = sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		snapshots = store.SnapshotStore()
		logger.Debug("Database: %s", store.Path())
	}

	cleanup := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing database: %v", err)
			}
		}
	}

	state := services.NewStateService(contacts, notes, snapshots, codec)
	if err := state.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading data: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	svc := &cli.Services{
		Contacts: services.NewContactService(state, validation.NewValidator(), settings),
		Notes:    services.NewNoteService(state),
		Settings: settings,
		State:    state,
		DataDir:  dataDir,
	}
	if store != nil {
		svc.Watcher = watch.New(dataDir, state.Reload,
			watch.WithFiles(sqlite.DatabaseFile, sqlite.DatabaseFile+"-{wal,shm}"),
			watch.WithDebounce(250*time.Millisecond),
		)
	}

	return svc, cleanup, nil
}

func newConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	if opts.Ephemeral {
		return memory.NewConfigStore(), nil
	}
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config: %s", store.Path())
	return store, nil
}

// resolveDataDir returns dir, or the data directory under the lotus home.
func resolveDataDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := file.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dataSubdir), nil
}
