// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// blockingService runs until canceled. If failFirst is set, the first
// run returns an error so the supervisor restarts it.
type blockingService struct {
	name      string
	failFirst bool
	starts    atomic.Int32
	running   chan struct{}
}

func newBlockingService(name string) *blockingService {
	return &blockingService{name: name, running: make(chan struct{}, 8)}
}

func (s *blockingService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if s.failFirst && n == 1 {
		return errors.New("transient failure")
	}
	s.running <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string { return s.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitRunning(t *testing.T, s *blockingService) {
	t.Helper()
	select {
	case <-s.running:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s did not start", s.name)
	}
}

func TestTreeConfig_WithDefaults(t *testing.T) {
	got := TreeConfig{FailureBackoff: time.Second}.withDefaults()
	def := DefaultTreeConfig()

	if got.FailureBackoff != time.Second {
		t.Errorf("FailureBackoff = %v, want explicit 1s kept", got.FailureBackoff)
	}
	if got.FailureThreshold != def.FailureThreshold {
		t.Errorf("FailureThreshold = %v, want %v", got.FailureThreshold, def.FailureThreshold)
	}
	if got.FailureDecay != def.FailureDecay {
		t.Errorf("FailureDecay = %v, want %v", got.FailureDecay, def.FailureDecay)
	}
	if got.ShutdownTimeout != def.ShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", got.ShutdownTimeout, def.ShutdownTimeout)
	}
}

func TestSupervisorTree_RunsBothLayers(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("Root() returned nil")
	}

	refresh := newBlockingService("corpus-refresh")
	httpSvc := newBlockingService("http-server")
	tree.AddDataService(refresh)
	tree.AddAPIService(httpSvc)

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	waitRunning(t, refresh)
	waitRunning(t, httpSvc)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop after cancellation")
	}
	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTree_RestartsFailedService(t *testing.T) {
	tree, err := NewSupervisorTree(nil, TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	flaky := newBlockingService("flaky")
	flaky.failFirst = true
	tree.AddDataService(flaky)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := tree.ServeBackground(ctx)

	waitRunning(t, flaky)
	if got := flaky.starts.Load(); got < 2 {
		t.Errorf("starts = %d, want a restart after the first failure", got)
	}
	cancel()
	<-done
}
