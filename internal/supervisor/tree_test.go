// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})
		if err != nil {
			t.Fatal(err)
		}

		tree.AddDataService(NewMockService("mock-data"))
		tree.AddAPIService(NewMockService("mock-api"))

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("tree did not shut down in time")
		}
	})

	t.Run("ServeBackground returns channel", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		select {
		case err := <-tree.ServeBackground(ctx):
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Error("did not receive from error channel")
		}
	})
}

func TestSupervisorTreeServiceManagement(t *testing.T) {
	layers := []struct {
		name string
		add  func(*SupervisorTree, *MockService)
	}{
		{"data", func(tr *SupervisorTree, s *MockService) { tr.AddDataService(s) }},
		{"api", func(tr *SupervisorTree, s *MockService) { tr.AddAPIService(s) }},
	}
	for _, layer := range layers {
		t.Run("services in "+layer.name+" layer are started", func(t *testing.T) {
			tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

			svc := NewMockService(layer.name + "-service")
			layer.add(tree, svc)

			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			done := tree.ServeBackground(ctx)
			time.Sleep(100 * time.Millisecond)

			if svc.StartCount() < 1 {
				t.Errorf("%s service was not started", layer.name)
			}
			cancel()
			<-done
		})
	}
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	t.Run("failing data service does not stop the api layer", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 10,
			FailureBackoff:   10 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})

		failingSvc := NewMockService("failing")
		failingSvc.SetFailCount(2)
		stableSvc := NewMockService("stable")

		tree.AddDataService(failingSvc)
		tree.AddAPIService(stableSvc)

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		done := tree.ServeBackground(ctx)
		time.Sleep(200 * time.Millisecond)

		if failingSvc.StartCount() < 3 {
			t.Errorf("expected at least 3 starts for failing service, got %d", failingSvc.StartCount())
		}
		if stableSvc.StartCount() != 1 {
			t.Errorf("stable service started %d times, want 1", stableSvc.StartCount())
		}
		cancel()
		<-done
	})

	t.Run("one-shot service is not restarted", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureBackoff:  10 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})

		oneShot := NewMockService("one-shot")
		oneShot.SetError(suture.ErrDoNotRestart)
		tree.AddDataService(oneShot)

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		done := tree.ServeBackground(ctx)
		time.Sleep(100 * time.Millisecond)

		if oneShot.StartCount() != 1 {
			t.Errorf("one-shot service started %d times, want 1", oneShot.StartCount())
		}
		cancel()
		<-done
	})
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("expected FailureThreshold 5.0, got %f", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("expected FailureDecay 30.0, got %f", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("expected FailureBackoff 15s, got %v", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", config.ShutdownTimeout)
	}
}
