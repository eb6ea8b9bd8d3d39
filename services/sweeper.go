package services

import (
	"context"
	"sync"
	"time"

	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/store"
)

// SessionSweeper periodically aborts remote multipart uploads older than the
// session retention window and purges their leftover session records. The
// session TTL alone never touches the object store.
type SessionSweeper struct {
	sessionStore store.SessionStore
	fileStorage  store.ObjectStorage
	interval     time.Duration

	logger logger.Logger
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionSweeper(
	parent context.Context,
	sessionStore store.SessionStore,
	fileStorage store.ObjectStorage,
	interval time.Duration,
	l logger.Logger,
) *SessionSweeper {
	ctx, cancel := context.WithCancel(parent)

	return &SessionSweeper{
		sessionStore: sessionStore,
		fileStorage:  fileStorage,
		interval:     interval,
		logger:       l,
		now:          time.Now,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (s *SessionSweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
}

func (s *SessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Sweep(s.ctx); err != nil && s.ctx.Err() == nil {
			s.logger.Error("session sweep failed", "error", err)
		}

		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep runs a single reconciliation pass and returns the number of remote
// uploads it aborted.
func (s *SessionSweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-SessionRetention)

	aborted, err := s.fileStorage.AbortStaleMultipartUploads(ctx, cutoff)
	for _, upload := range aborted {
		if purgeErr := s.sessionStore.Purge(ctx, upload.UploadID); purgeErr != nil {
			s.logger.Warn("failed to purge stale session", "upload_id", upload.UploadID, "error", purgeErr)
		}
	}

	if len(aborted) > 0 {
		s.logger.Info("stale multipart uploads reclaimed", "count", len(aborted), "cutoff", cutoff)
	}
	return len(aborted), err
}

func (s *SessionSweeper) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
