package main

import (
	"context"
	"testing"
	"time"

	"displayinfo/internal/app"
)

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := app.Config{Home: t.TempDir(), Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	cfg := app.Config{Home: t.TempDir(), Addr: "256.0.0.1:bad", ShutdownTimeout: time.Second}
	if err := run(context.Background(), cfg); err == nil {
		t.Fatal("expected listen error")
	}
}
