package cmd

import (
	"fmt"

	adapterfilelock "github.com/s-age/pipe-sub004/internal/adapters/filelock"
	adapterprocess "github.com/s-age/pipe-sub004/internal/adapters/process"
	adapterstorage "github.com/s-age/pipe-sub004/internal/adapters/storage"
	adapterwatch "github.com/s-age/pipe-sub004/internal/adapters/watch"
	"github.com/s-age/pipe-sub004/internal/config"
	"github.com/s-age/pipe-sub004/internal/ports"
	"github.com/s-age/pipe-sub004/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Options config.StoreOptions
	Paths   config.Paths

	// Services
	ArchiveService     *services.ArchiveService
	CompressionService *services.CompressionService
	ProcessService     *services.ProcessService
	ReferenceService   *services.ReferenceService
	RunService         *services.RunService
	SessionService     *services.SessionService

	// Internal - for cleanup only
	catalog ports.BackupCatalog
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(paths config.Paths, opts config.StoreOptions) (*Container, error) {
	// Create adapters
	locker := adapterfilelock.New(adapterfilelock.Options{
		PollInterval: opts.LockPollInterval,
		Timeout:      opts.LockTimeout,
	})
	index := adapterstorage.NewIndexRepository(locker, paths.Index)
	sessionRepo := adapterstorage.NewSessionFileRepository(locker, index, paths.SessionsDir, paths.BackupsDir)
	registry := adapterprocess.NewFileRegistry(locker, paths.Processes, adapterprocess.NewOSSignaler(), opts.KillGracePeriod)
	watcher := adapterwatch.NewFSWatcher(adapterwatch.DefaultDebounceDelay)

	catalog, err := adapterstorage.NewSQLiteCatalog(paths.BackupCatalog)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup catalog: %w", err)
	}

	// Create services
	return &Container{
		ArchiveService:     services.NewArchiveService(sessionRepo, catalog, registry, opts.ArchiveWorkers),
		CompressionService: services.NewCompressionService(sessionRepo, catalog),
		Options:            opts,
		Paths:              paths,
		ProcessService:     services.NewProcessService(registry, sessionRepo, index),
		ReferenceService:   services.NewReferenceService(sessionRepo, opts.ProjectRoot, opts.ReferenceTTL),
		RunService:         services.NewRunService(sessionRepo, opts.ToolResponseLimit, opts.ExpirationThreshold),
		SessionService:     services.NewSessionService(sessionRepo, index, watcher),
		catalog:            catalog,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.catalog != nil {
		return c.catalog.Close()
	}
	return nil
}
