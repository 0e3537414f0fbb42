package remote_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"displayinfo/internal/domain"
	"displayinfo/internal/remote"
	"displayinfo/internal/server"
	"displayinfo/internal/services/density"
	"displayinfo/internal/services/display"
)

func startService(t *testing.T) *remote.HTTP {
	t.Helper()
	srv := server.New(display.NewDefault(), density.New(), log.New(io.Discard, "", 0))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return remote.NewHTTP(ts.URL+"/", ts.Client())
}

func TestBuildDisplayInfo_RoundTrip(t *testing.T) {
	c := startService(t)
	snap := domain.Snapshot{WidthPixels: 1440, HeightPixels: 2560, XDpi: 515, YDpi: 515, Density: 3.5}

	got, err := c.BuildDisplayInfo(context.Background(), snap)
	if err != nil {
		t.Fatalf("BuildDisplayInfo: %v", err)
	}
	want, err := display.Build(snap)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got != want {
		t.Fatalf("remote %+v\nlocal %+v", got.Record(), want.Record())
	}
	if got.Density() != domain.XXXHDPI {
		t.Fatalf("density = %s", got.Density())
	}
}

func TestBuildDisplayInfo_ServerError(t *testing.T) {
	c := startService(t)
	_, err := c.BuildDisplayInfo(context.Background(), domain.Snapshot{WidthPixels: 1, HeightPixels: 1, XDpi: 160, YDpi: 160})
	if err == nil {
		t.Fatal("expected error for zero density")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "density") {
		t.Fatalf("error should carry status and message: %v", err)
	}
}

func TestClassifyDensity(t *testing.T) {
	c := startService(t)
	got, err := c.ClassifyDensity(context.Background(), 210, 400)
	if err != nil {
		t.Fatalf("ClassifyDensity: %v", err)
	}
	if got != domain.HDPI {
		t.Fatalf("got %s, want hdpi", got)
	}
}

func TestPost_RespectsContext(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := remote.NewHTTP(slow.URL, nil).ClassifyDensity(ctx, 160, 160)
	if err == nil {
		t.Fatal("expected deadline error")
	}
}
