package playback

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSyncer_FlushKeepsHighestAndRetries(t *testing.T) {
	fb := newFakeBackend(scenarioCourse())
	fb.saveErr = errors.New("timeout")
	s := NewSyncer(fb, SyncConfig{RetryDelay: 5 * time.Millisecond, MaxRetryDelay: 10 * time.Millisecond})
	defer s.Close()

	if err := s.Flush(context.Background(), "c-1", 2); err == nil {
		t.Fatalf("expected error while backend is failing")
	}
	s.Submit("c-1", 1)
	if got := s.Pending("c-1"); got != 2 {
		t.Fatalf("lower submit must not lower the pending mark, got %d", got)
	}

	fb.mu.Lock()
	fb.saveErr = nil
	fb.mu.Unlock()
	waitFor(t, "retry", func() bool { return fb.stored("c-1") == 2 })
	waitFor(t, "pending cleared", func() bool { return s.Pending("c-1") == -1 })
}

func TestSyncer_SkipsWritesAtOrBelowConfirmedMark(t *testing.T) {
	fb := newFakeBackend(scenarioCourse())
	s := NewSyncer(fb, SyncConfig{})
	defer s.Close()

	if err := s.Flush(context.Background(), "c-1", 3); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if err := s.Flush(context.Background(), "c-1", 1); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	fb.mu.Lock()
	saves := append([]int(nil), fb.saves...)
	fb.mu.Unlock()
	if len(saves) != 1 || saves[0] != 3 {
		t.Fatalf("expected a single write of 3, got %v", saves)
	}
}

func TestSyncer_ForgetDropsQueuedWrites(t *testing.T) {
	fb := newFakeBackend(scenarioCourse())
	fb.saveErr = errors.New("offline")
	s := NewSyncer(fb, SyncConfig{RetryDelay: time.Hour})
	defer s.Close()

	_ = s.Flush(context.Background(), "c-1", 2)
	s.Forget("c-1")
	if got := s.Pending("c-1"); got != -1 {
		t.Fatalf("expected nothing pending after Forget, got %d", got)
	}
}

func TestSyncer_ForgetFencesWriteInFlight(t *testing.T) {
	fb := newFakeBackend(scenarioCourse())
	release := make(chan struct{})
	fb.block = release
	s := NewSyncer(fb, SyncConfig{RetryDelay: 5 * time.Millisecond})
	defer s.Close()

	s.Submit("c-1", 3)
	waitFor(t, "write in flight", func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.inflight["c-1"] > 0
	})

	forgotten := make(chan struct{})
	go func() {
		s.Forget("c-1")
		close(forgotten)
	}()
	select {
	case <-forgotten:
		t.Fatalf("Forget returned while a write was still in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-forgotten:
	case <-time.After(2 * time.Second):
		t.Fatalf("Forget did not return after the write finished")
	}

	// The stale write of 3 must not mark later writes as already confirmed.
	s.Submit("c-1", 0)
	waitFor(t, "write after restart", func() bool {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		return len(fb.saves) == 2 && fb.saves[1] == 0
	})
	waitFor(t, "pending cleared", func() bool { return s.Pending("c-1") == -1 })
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession("tok", "u1", "teacher", time.Now().Add(time.Hour))
	if tok, err := s.Token(); err != nil || tok != "tok" {
		t.Fatalf("Token() = %q, %v", tok, err)
	}
	if !s.SeesTeacherTips() {
		t.Fatalf("teachers see tips")
	}
	s.Close()
	if _, err := s.Token(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	expired := NewSession("tok", "u1", "student", time.Now().Add(-time.Minute))
	if expired.Active() {
		t.Fatalf("expired session must not be active")
	}
}
