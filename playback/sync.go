package playback

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

type SyncConfig struct {
	// AttemptTimeout bounds a single background write.
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
	MaxRetryDelay  time.Duration
}

func (c SyncConfig) withDefaults() SyncConfig {
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = 10 * time.Second
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}
	if c.MaxRetryDelay <= 0 {
		c.MaxRetryDelay = 30 * time.Second
	}
	return c
}

// Syncer queues progress writes and retries failed ones in the background. Per course it only
// keeps the highest unsaved page index, so a burst of writes collapses into one request.
type Syncer struct {
	saver Saver
	cfg   SyncConfig

	mu      sync.Mutex
	idle    *sync.Cond
	pending map[string]int
	acked   map[string]int

	// gen is bumped by Forget; writes started under an older generation are discarded.
	gen      map[string]uint64
	inflight map[string]int

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewSyncer(saver Saver, cfg SyncConfig) *Syncer {
	s := &Syncer{
		saver:    saver,
		cfg:      cfg.withDefaults(),
		pending:  make(map[string]int),
		acked:    make(map[string]int),
		gen:      make(map[string]uint64),
		inflight: make(map[string]int),
		kick:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.idle = sync.NewCond(&s.mu)
	s.wg.Add(1)
	go s.run()
	return s
}

// Submit queues a write and returns immediately.
func (s *Syncer) Submit(courseID string, pageIndex int) {
	if !s.enqueue(courseID, pageIndex) {
		return
	}
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Flush queues a write and waits for the course's pending mark to be stored. On failure the
// write stays queued for the background loop and a *SaveError is returned.
func (s *Syncer) Flush(ctx context.Context, courseID string, pageIndex int) error {
	s.enqueue(courseID, pageIndex)
	if err := s.saveCourse(ctx, courseID); err != nil {
		select {
		case s.kick <- struct{}{}:
		default:
		}
		return &SaveError{CourseID: courseID, PageIndex: pageIndex, Err: err}
	}
	return nil
}

// Pending returns the highest queued but unconfirmed index for a course, or -1.
func (s *Syncer) Pending(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.pending[courseID]; ok {
		return v
	}
	return -1
}

// Forget drops queued writes for a course and waits for any write already in flight to return,
// so a following reset cannot be overtaken by an old mark.
func (s *Syncer) Forget(courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[courseID]++
	delete(s.pending, courseID)
	delete(s.acked, courseID)
	for s.inflight[courseID] > 0 {
		s.idle.Wait()
	}
}

// Close stops the background loop. Writes still pending are dropped; the next session redoes
// at most the pages they covered.
func (s *Syncer) Close() {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.mu.Lock()
		if len(s.pending) > 0 {
			log.WithField("courses", len(s.pending)).Warn("Dropping unsaved progress on close")
		}
		s.mu.Unlock()
	})
}

func (s *Syncer) enqueue(courseID string, pageIndex int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acked, ok := s.acked[courseID]; ok && pageIndex <= acked {
		return false
	}
	if cur, ok := s.pending[courseID]; ok && pageIndex <= cur {
		return true
	}
	s.pending[courseID] = pageIndex
	return true
}

func (s *Syncer) saveCourse(ctx context.Context, courseID string) error {
	s.mu.Lock()
	idx, ok := s.pending[courseID]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	gen := s.gen[courseID]
	s.inflight[courseID]++
	s.mu.Unlock()

	err := s.saver.SaveProgress(ctx, courseID, idx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[courseID]--; s.inflight[courseID] == 0 {
		delete(s.inflight, courseID)
	}
	s.idle.Broadcast()

	if gen != s.gen[courseID] {
		return nil
	}
	if err != nil {
		return err
	}
	if prev, ok := s.acked[courseID]; !ok || prev < idx {
		s.acked[courseID] = idx
	}
	if cur, ok := s.pending[courseID]; ok && cur <= idx {
		delete(s.pending, courseID)
	}
	return nil
}

func (s *Syncer) drain() error {
	s.mu.Lock()
	courses := make([]string, 0, len(s.pending))
	for c := range s.pending {
		courses = append(courses, c)
	}
	s.mu.Unlock()

	var firstErr error
	for _, c := range courses {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.AttemptTimeout)
		err := s.saveCourse(ctx, c)
		cancel()
		if err != nil {
			log.WithFields(log.Fields{
				"course_id": c,
				"error":     err.Error(),
			}).Warn("Progress write failed, will retry")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *Syncer) run() {
	defer s.wg.Done()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.RetryDelay
	b.MaxInterval = s.cfg.MaxRetryDelay
	b.MaxElapsedTime = 0
	b.Reset()

	var retry <-chan time.Time
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
		case <-retry:
		}

		if err := s.drain(); err != nil {
			retry = time.After(b.NextBackOff())
			continue
		}
		retry = nil
		b.Reset()
	}
}
