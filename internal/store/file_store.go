// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	fileMode      = 0o600
	dirMode       = 0o700
	ownerFileExt  = ".yml"
	tempFileExt   = ".tmp"
	lockFileName  = ".vaultd.lock"
	probeFileName = ".probe-*"
)

// fileStore is the default [VaultStore]: one YAML document per owner in the
// data directory, cached forever once loaded.
type fileStore struct {
	fs     afero.Fs
	now    func() time.Time
	logger *logger.Logger
	queue  workers.JobQueue

	dataDir          string
	backupDir        string
	backups          bool
	renameRetryDelay time.Duration

	mu      sync.Mutex
	cache   map[models.OwnerID]*OwnerDocument
	pending map[models.OwnerID]bool
	// unflushed holds throttle stamps of staged writes whose persist is not
	// queued yet.
	unflushed map[models.OwnerID][]throttleStamp

	loads    singleflight.Group
	locks    *ownerLocks
	throttle *throttleClock
	journal  *FailureJournal

	lock *os.File
}

// Open prepares the data directory and returns the owner file store.
//
// The data directory (and the backup directory, when backups are enabled) is
// created if missing and probed for writability; leftover temporary files of
// an interrupted persist are removed. On the real filesystem the directory is
// locked against a second process until Close.
func Open(storage config.Storage, vaults config.Vaults, queue workers.JobQueue, log *logger.Logger, opts ...Option) (VaultStore, error) {
	return openFileStore(storage, vaults, queue, log, opts...)
}

func openFileStore(storage config.Storage, vaults config.Vaults, queue workers.JobQueue, log *logger.Logger, opts ...Option) (*fileStore, error) {
	s := &fileStore{
		fs:               afero.NewOsFs(),
		now:              time.Now,
		logger:           log.Component("file-store"),
		queue:            queue,
		dataDir:          storage.Files.DataDir,
		backupDir:        storage.Files.BackupDir,
		backups:          !storage.Files.DisableBackups && storage.Files.BackupDir != "",
		renameRetryDelay: vaults.RenameRetryDelay,
		cache:            make(map[models.OwnerID]*OwnerDocument),
		pending:          make(map[models.OwnerID]bool),
		unflushed:        make(map[models.OwnerID][]throttleStamp),
		locks:            newOwnerLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.throttle = newThrottleClock(vaults.SaveThrottle, s.now)
	s.journal = NewFailureJournal(vaults.FailureJournalSize, s.now)

	if err := s.prepareDir(s.dataDir); err != nil {
		return nil, err
	}
	if s.backups {
		if err := s.prepareDir(s.backupDir); err != nil {
			return nil, err
		}
	}

	if err := s.lockDataDir(); err != nil {
		return nil, err
	}

	if err := s.sweepTempFiles(); err != nil {
		s.logger.Warn().Err(err).Str("dir", s.dataDir).Msg("failed to remove stale temporary files")
	}

	s.logger.Info().
		Str("data_dir", s.dataDir).
		Bool("backups", s.backups).
		Msg("owner file store opened")

	return s, nil
}

func (s *fileStore) prepareDir(dir string) error {
	if err := s.fs.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataDirNotWritable, dir, err)
	}

	probe, err := afero.TempFile(s.fs, dir, probeFileName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataDirNotWritable, dir, err)
	}
	name := probe.Name()
	_ = probe.Close()

	if err = s.fs.Remove(name); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataDirNotWritable, dir, err)
	}
	return nil
}

func (s *fileStore) lockDataDir() error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return nil
	}

	f, err := os.OpenFile(filepath.Join(s.dataDir, lockFileName), os.O_CREATE|os.O_RDWR, fileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataDirNotWritable, err)
	}
	if err = lockFile(f); err != nil {
		_ = f.Close()
		return err
	}

	s.lock = f
	return nil
}

// sweepTempFiles removes temporary files left by a persist that was
// interrupted before its rename.
func (s *fileStore) sweepTempFiles() error {
	entries, err := afero.ReadDir(s.fs, s.dataDir)
	if err != nil {
		return err
	}

	var result *multierror.Error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), tempFileExt) {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dataDir, e.Name())); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		s.logger.Info().Str("file", e.Name()).Msg("removed stale temporary file")
	}

	return result.ErrorOrNil()
}

func (s *fileStore) ownerPath(owner models.OwnerID) string {
	return filepath.Join(s.dataDir, string(owner)+ownerFileExt)
}

func (s *fileStore) backupPath(owner models.OwnerID) string {
	return filepath.Join(s.backupDir, string(owner)+ownerFileExt)
}

func (s *fileStore) cached(owner models.OwnerID) *OwnerDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache[owner]
}

// GetDocument implements [VaultStore]. Concurrent first loads of one owner
// share a single disk read.
func (s *fileStore) GetDocument(ctx context.Context, owner models.OwnerID, createIfMissing bool) (*OwnerDocument, error) {
	if doc := s.cached(owner); doc != nil {
		return doc, nil
	}

	key := string(owner) + ":" + strconv.FormatBool(createIfMissing)
	v, err, _ := s.loads.Do(key, func() (any, error) {
		return s.load(owner, createIfMissing)
	})
	if err != nil {
		return nil, err
	}

	return v.(*OwnerDocument), nil
}

func (s *fileStore) load(owner models.OwnerID, createIfMissing bool) (*OwnerDocument, error) {
	unlock := s.locks.lock(owner)
	defer unlock()

	if doc := s.cached(owner); doc != nil {
		return doc, nil
	}

	path := s.ownerPath(owner)
	data, err := afero.ReadFile(s.fs, path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if !createIfMissing {
			return nil, ErrDocumentNotFound
		}
		f, createErr := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, fileMode)
		if createErr != nil {
			return nil, fmt.Errorf("creating owner file %s: %w", path, createErr)
		}
		if createErr = f.Close(); createErr != nil {
			return nil, fmt.Errorf("creating owner file %s: %w", path, createErr)
		}
		data = nil
	case err != nil:
		return nil, fmt.Errorf("reading owner file %s: %w", path, err)
	}

	doc, err := parseOwnerDocument(owner, data)
	if err != nil {
		s.logger.Severe().Err(err).Str("owner", owner.String()).Msg("failed to parse owner file")
		return nil, err
	}

	s.mu.Lock()
	s.cache[owner] = doc
	s.mu.Unlock()

	s.logger.Debug().Str("owner", owner.String()).Int("vaults", doc.Len()).Msg("owner document loaded")
	return doc, nil
}

// lookup returns the document of owner, or nil when the owner has none.
func (s *fileStore) lookup(ctx context.Context, owner models.OwnerID) (*OwnerDocument, error) {
	doc, err := s.GetDocument(ctx, owner, false)
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, nil
	}
	return doc, err
}

// ReadSlot implements [VaultStore].
func (s *fileStore) ReadSlot(ctx context.Context, vault models.VaultIdentity) (string, bool, error) {
	doc, err := s.lookup(ctx, vault.Owner)
	if err != nil || doc == nil {
		return "", false, err
	}

	e, ok := doc.Get(vault.Number)
	return e.Blob, ok, nil
}

// WriteSlot implements [VaultStore].
func (s *fileStore) WriteSlot(ctx context.Context, vault models.VaultIdentity, blob string) error {
	if err := s.StageSlot(ctx, vault, blob); err != nil {
		return err
	}
	return s.Flush(ctx, vault.Owner)
}

// StageSlot implements [VaultStore].
func (s *fileStore) StageSlot(ctx context.Context, vault models.VaultIdentity, blob string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.GetDocument(ctx, vault.Owner, true)
	if err != nil {
		return err
	}

	stamp, ok := s.throttle.acquire(vault)
	if !ok {
		s.logger.Debug().Str("vault", vault.String()).Msg("save inside throttle window skipped")
		return ErrSaveThrottled
	}

	doc.Set(vault.Number, blob, stamp.at)

	s.mu.Lock()
	s.unflushed[vault.Owner] = append(s.unflushed[vault.Owner], stamp)
	s.mu.Unlock()

	return nil
}

// Flush implements [VaultStore].
func (s *fileStore) Flush(ctx context.Context, owner models.OwnerID) error {
	return s.schedulePersist(ctx, owner)
}

// VaultExists implements [VaultStore].
func (s *fileStore) VaultExists(ctx context.Context, vault models.VaultIdentity) (bool, error) {
	doc, err := s.lookup(ctx, vault.Owner)
	if err != nil || doc == nil {
		return false, err
	}
	return doc.Has(vault.Number), nil
}

// ListVaultNumbers implements [VaultStore].
func (s *fileStore) ListVaultNumbers(ctx context.Context, owner models.OwnerID) ([]int, error) {
	doc, err := s.lookup(ctx, owner)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []int{}, nil
	}
	return doc.Numbers(), nil
}

// DeleteVault implements [VaultStore]. The rewrite of the owner file happens
// on the worker pool.
func (s *fileStore) DeleteVault(ctx context.Context, vault models.VaultIdentity) error {
	doc, err := s.lookup(ctx, vault.Owner)
	if err != nil || doc == nil {
		return err
	}

	if !doc.Delete(vault.Number) {
		return nil
	}

	s.logger.Info().Str("vault", vault.String()).Msg("vault deleted")
	return s.schedulePersist(ctx, vault.Owner)
}

// DeleteAllVaults implements [VaultStore]. The file is removed under the owner
// lock, so a persist job already queued for the owner finds nothing to write.
func (s *fileStore) DeleteAllVaults(_ context.Context, owner models.OwnerID) error {
	unlock := s.locks.lock(owner)
	defer unlock()

	s.mu.Lock()
	delete(s.cache, owner)
	delete(s.unflushed, owner)
	s.mu.Unlock()
	s.throttle.forgetOwner(owner)

	err := s.fs.Remove(s.ownerPath(owner))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		f := s.journal.Record(owner, StageDelete, false, err)
		s.logger.Error().Err(err).Str("owner", owner.String()).Str("failure_id", f.ID).Msg("failed to delete owner file")
		return fmt.Errorf("deleting owner file: %w", err)
	}

	s.logger.Info().Str("owner", owner.String()).Msg("all vaults deleted")
	return nil
}

// Preload implements [VaultStore].
func (s *fileStore) Preload(ctx context.Context, owner models.OwnerID) error {
	_, err := s.lookup(ctx, owner)
	return err
}

// Failures implements [VaultStore].
func (s *fileStore) Failures() []models.SaveFailure {
	return s.journal.List()
}

// Close implements [VaultStore].
func (s *fileStore) Close() error {
	if s.lock == nil {
		return nil
	}

	var result *multierror.Error
	if err := unlockFile(s.lock); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.lock.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	s.lock = nil

	return result.ErrorOrNil()
}
