// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/MKhiriev/go-vault-keeper/models"
)

var tracer = otel.Tracer("github.com/MKhiriev/go-vault-keeper/internal/store")

// persistError carries the pipeline stage that failed.
type persistError struct {
	stage      string
	structural bool
	err        error
}

func (e *persistError) Error() string {
	return fmt.Sprintf("%s: %v", e.stage, e.err)
}

func (e *persistError) Unwrap() error {
	return e.err
}

func stageError(stage string, err error) error {
	return &persistError{stage: stage, err: err}
}

// schedulePersist queues a persist job for owner unless one is already
// waiting. The job serialises the document as it is when it runs, so one
// queued job covers every write accepted before it starts.
//
// When the job cannot be queued, the throttle stamps of the owner's staged
// writes are taken back: nothing of them is on its way to disk.
func (s *fileStore) schedulePersist(ctx context.Context, owner models.OwnerID) error {
	s.mu.Lock()
	if s.pending[owner] {
		delete(s.unflushed, owner)
		s.mu.Unlock()
		return nil
	}
	s.pending[owner] = true
	s.mu.Unlock()

	err := s.queue.Submit(ctx, func(ctx context.Context) {
		s.persist(ctx, owner)
	})

	s.mu.Lock()
	stamps := s.unflushed[owner]
	delete(s.unflushed, owner)
	if err != nil {
		delete(s.pending, owner)
	}
	s.mu.Unlock()

	if err != nil {
		for _, stamp := range stamps {
			s.throttle.release(stamp)
		}

		f := s.journal.Record(owner, StageEnqueue, false, err)
		s.logger.Error().Err(err).Str("owner", owner.String()).Str("failure_id", f.ID).Msg("failed to queue persist job")
		return fmt.Errorf("queueing persist for %s: %w", owner, err)
	}

	return nil
}

// persist is the body of a persist job.
func (s *fileStore) persist(ctx context.Context, owner models.OwnerID) {
	s.mu.Lock()
	delete(s.pending, owner)
	s.mu.Unlock()

	_, span := tracer.Start(ctx, "store.persist")
	span.SetAttributes(attribute.String("vault.owner", owner.String()))
	defer span.End()

	unlock := s.locks.lock(owner)
	defer unlock()

	doc := s.cached(owner)
	if doc == nil {
		s.logger.Debug().Str("owner", owner.String()).Msg("owner evicted before persist, nothing to write")
		return
	}

	err := s.writeDocument(owner, doc)
	if err == nil {
		s.logger.Debug().Str("owner", owner.String()).Msg("owner document saved")
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)

	stage, structural := StageWrite, false
	var pe *persistError
	if errors.As(err, &pe) {
		stage, structural = pe.stage, pe.structural
	}

	f := s.journal.Record(owner, stage, structural, err)
	event := s.logger.Error()
	if structural {
		event = s.logger.Severe()
	}
	event.Err(err).
		Str("owner", owner.String()).
		Str("stage", stage).
		Str("failure_id", f.ID).
		Msg("failed to save owner file")
}

// writeDocument replaces the owner file with the serialised document. The
// caller holds the owner lock. The cached document is never rolled back: a
// failed write is repaired by the next successful one.
func (s *fileStore) writeDocument(owner models.OwnerID, doc *OwnerDocument) error {
	expectVaults := doc.Len() > 0

	data, err := doc.marshal()
	if err != nil {
		return stageError(StageSerialize, err)
	}

	tmpName, err := s.writeTemp(s.dataDir, string(owner)+"-*"+ownerFileExt+tempFileExt, data)
	if tmpName != "" {
		defer s.removeQuietly(tmpName)
	}
	if err != nil {
		return stageError(StageWrite, err)
	}

	info, err := s.fs.Stat(tmpName)
	if err != nil {
		return stageError(StageWrite, err)
	}
	if info.Size() == 0 {
		return stageError(StageEmpty, fmt.Errorf("%w: %s", ErrEmptyTempFile, tmpName))
	}

	live := s.ownerPath(owner)
	if s.backups {
		if err = s.backup(owner, live); err != nil {
			f := s.journal.Record(owner, StageBackup, false, err)
			s.logger.Error().Err(err).Str("owner", owner.String()).Str("failure_id", f.ID).Msg("failed to rotate backup, saving anyway")
		}
	}

	if err = s.rename(tmpName, live); err != nil {
		return stageError(StageRename, err)
	}

	if !expectVaults {
		return nil
	}

	written, err := afero.ReadFile(s.fs, live)
	if err != nil {
		return &persistError{stage: StageVerify, structural: true, err: err}
	}
	if !containsVaultData(written) {
		return &persistError{stage: StageVerify, structural: true, err: fmt.Errorf("%w: %s", ErrVerificationFailed, owner)}
	}

	return nil
}

// writeTemp writes data to a new temporary file in dir and syncs it. The name
// is returned even on failure so the caller can remove the file.
func (s *fileStore) writeTemp(dir, pattern string, data []byte) (string, error) {
	f, err := afero.TempFile(s.fs, dir, pattern)
	if err != nil {
		return "", err
	}
	name := f.Name()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return name, err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return name, err
	}
	return name, f.Close()
}

// backup copies the live file into the backup directory, replacing the
// previous backup. The live file stays in place.
func (s *fileStore) backup(owner models.OwnerID, live string) error {
	src, err := s.fs.Open(live)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	tmpName, err := s.writeTemp(s.backupDir, filepath.Base(live)+"-*"+tempFileExt, data)
	if tmpName != "" {
		defer s.removeQuietly(tmpName)
	}
	if err != nil {
		return err
	}

	return s.fs.Rename(tmpName, s.backupPath(owner))
}

// rename replaces dst with src, retrying once after renameRetryDelay.
func (s *fileStore) rename(src, dst string) error {
	err := s.fs.Rename(src, dst)
	if err == nil {
		return nil
	}

	s.logger.Warn().Err(err).Str("file", dst).Dur("retry_in", s.renameRetryDelay).Msg("rename failed, retrying")
	time.Sleep(s.renameRetryDelay)

	if retryErr := s.fs.Rename(src, dst); retryErr != nil {
		return fmt.Errorf("%w: %w", ErrRenameFailed, retryErr)
	}
	return nil
}

func (s *fileStore) removeQuietly(name string) {
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn().Err(err).Str("file", name).Msg("failed to remove temporary file")
	}
}
