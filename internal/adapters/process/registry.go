// Package process keeps the registry of background agent processes and
// signals them.
package process

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// DefaultKillGracePeriod is how long Kill waits between SIGTERM and SIGKILL
const DefaultKillGracePeriod = 5 * time.Second

type registryFile struct {
	Processes map[string]processRecord `json:"processes"`
	Version   int                      `json:"version"`
}

type processRecord struct {
	Instruction string    `json:"instruction"`
	LogFile     string    `json:"log_file"`
	PID         int       `json:"pid"`
	StartedAt   time.Time `json:"started_at"`
}

func newRegistryFile() registryFile {
	return registryFile{Processes: make(map[string]processRecord), Version: 1}
}

// FileRegistry implements ProcessRegistry on a JSON file guarded by its own
// lock, independent from session locks
type FileRegistry struct {
	grace    time.Duration
	locker   *filelock.Locker
	now      func() time.Time
	path     string
	signaler ports.ProcessSignaler
}

// Compile-time interface verification
var _ ports.ProcessRegistry = (*FileRegistry)(nil)

// NewFileRegistry creates a registry stored at path
func NewFileRegistry(locker *filelock.Locker, path string, signaler ports.ProcessSignaler, grace time.Duration) *FileRegistry {
	if grace < 0 {
		grace = DefaultKillGracePeriod
	}
	return &FileRegistry{
		grace:    grace,
		locker:   locker,
		now:      func() time.Time { return time.Now().UTC() },
		path:     path,
		signaler: signaler,
	}
}

func (r *FileRegistry) update(ctx context.Context, fn func(reg *registryFile) error) error {
	return filelock.Update(ctx, r.locker, filelock.LockPath(r.path), r.path, newRegistryFile(), func(reg *registryFile, _ bool) error {
		if reg.Processes == nil {
			reg.Processes = make(map[string]processRecord)
		}
		return fn(reg)
	})
}

func (r *FileRegistry) read(ctx context.Context) (registryFile, error) {
	reg, err := filelock.Read(ctx, r.locker, filelock.LockPath(r.path), r.path, newRegistryFile())
	if err != nil {
		return registryFile{}, err
	}
	if reg.Processes == nil {
		reg.Processes = make(map[string]processRecord)
	}
	return reg, nil
}

// Register records info as the running process of its session. An existing
// entry whose process is still alive fails with domain.ErrAlreadyRunning
// until Cleanup removes it. An entry whose pid is dead is replaced without
// a prior Cleanup: an agent that crashed never cleans up after itself, and
// the dead pid cannot be running the session anymore. The replacement is
// logged as a warning.
func (r *FileRegistry) Register(ctx context.Context, info domain.ProcessInfo) error {
	if err := domain.ValidateSessionID(info.SessionID); err != nil {
		return err
	}
	if info.PID <= 0 {
		return domain.Validationf("invalid pid %d", info.PID)
	}
	if info.StartedAt.IsZero() {
		info.StartedAt = r.now()
	}

	return r.update(ctx, func(reg *registryFile) error {
		if existing, ok := reg.Processes[info.SessionID]; ok {
			if r.signaler.Alive(existing.PID) {
				return fmt.Errorf("%s (pid %d): %w", info.SessionID, existing.PID, domain.ErrAlreadyRunning)
			}
			logging.Logger.Warn("Reclaiming stale process entry",
				"session_id", info.SessionID,
				"stale_pid", existing.PID,
				"pid", info.PID,
			)
		}
		reg.Processes[info.SessionID] = processRecord{
			Instruction: info.Instruction,
			LogFile:     info.LogFile,
			PID:         info.PID,
			StartedAt:   info.StartedAt,
		}
		return nil
	})
}

// Get returns the registered process of sessionID
func (r *FileRegistry) Get(ctx context.Context, sessionID string) (*domain.ProcessInfo, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := reg.Processes[sessionID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sessionID, domain.ErrProcessNotFound)
	}
	info := toProcessInfo(sessionID, rec)
	return &info, nil
}

// IsRunning reports whether sessionID has a registered, live process
func (r *FileRegistry) IsRunning(ctx context.Context, sessionID string) (bool, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return false, err
	}
	rec, ok := reg.Processes[sessionID]
	if !ok {
		return false, nil
	}
	return r.signaler.Alive(rec.PID), nil
}

// List returns every registered process ordered by session id
func (r *FileRegistry) List(ctx context.Context) ([]domain.ProcessInfo, error) {
	reg, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.ProcessInfo, 0, len(reg.Processes))
	for id, rec := range reg.Processes {
		infos = append(infos, toProcessInfo(id, rec))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SessionID < infos[j].SessionID
	})
	return infos, nil
}

// Kill terminates the registered process of sessionID and reports whether
// it is gone. The entry itself is left for Cleanup.
func (r *FileRegistry) Kill(ctx context.Context, sessionID string) (bool, error) {
	info, err := r.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}

	logging.Logger.Info("Terminating process", "session_id", sessionID, "pid", info.PID, "grace", r.grace)
	gone, err := r.signaler.Terminate(ctx, info.PID, r.grace)
	if err != nil {
		return false, fmt.Errorf("failed to terminate %s: %w", sessionID, err)
	}
	return gone, nil
}

// Cleanup removes the entry of sessionID. Removing an absent entry is a no-op.
func (r *FileRegistry) Cleanup(ctx context.Context, sessionID string) error {
	return r.update(ctx, func(reg *registryFile) error {
		if _, ok := reg.Processes[sessionID]; !ok {
			return filelock.ErrSkipWrite
		}
		delete(reg.Processes, sessionID)
		return nil
	})
}

func toProcessInfo(sessionID string, rec processRecord) domain.ProcessInfo {
	return domain.ProcessInfo{
		Instruction: rec.Instruction,
		LogFile:     rec.LogFile,
		PID:         rec.PID,
		SessionID:   sessionID,
		StartedAt:   rec.StartedAt,
	}
}
