package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"displayinfo/internal/domain"
	"displayinfo/internal/server"
	"displayinfo/internal/services/density"
	"displayinfo/internal/services/display"
)

func newServer(t *testing.T, logs io.Writer) *httptest.Server {
	t.Helper()
	if logs == nil {
		logs = io.Discard
	}
	srv := server.New(display.NewDefault(), density.New(), log.New(logs, "", 0))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestDisplayInfo_MatchesBuilder(t *testing.T) {
	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/display-info",
		`{"width_px":1080,"height_px":1920,"x_dpi":440,"y_dpi":440,"density":2.75}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %s", resp.Status)
	}

	var rec domain.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want, err := display.Build(domain.Snapshot{WidthPixels: 1080, HeightPixels: 1920, XDpi: 440, YDpi: 440, Density: 2.75})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec != want.Record() {
		t.Fatalf("got %+v\nwant %+v", rec, want.Record())
	}
}

func TestDisplayInfo_InvalidMeasurement(t *testing.T) {
	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/display-info",
		`{"width_px":1080,"height_px":1920,"x_dpi":0,"y_dpi":440,"density":2.75}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %s", resp.Status)
	}
	var e server.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(e.Error, "x_dpi") {
		t.Fatalf("error should name the field: %q", e.Error)
	}
}

func TestDisplayInfo_OutOfRangeIsBadRequest(t *testing.T) {
	ts := newServer(t, nil)
	for _, body := range []string{
		`{"width_px":1080,"height_px":1920,"x_dpi":1e-300,"y_dpi":1e-300,"density":2.75}`,
		`{"width_px":1080,"height_px":1920,"x_dpi":440,"y_dpi":440,"density":1e-300}`,
	} {
		resp := post(t, ts.URL+"/v1/display-info", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: status = %s", body, resp.Status)
		}
	}
}

func TestDisplayInfo_MalformedBody(t *testing.T) {
	ts := newServer(t, nil)
	for _, body := range []string{`{`, `{"width_px":"wide"}`, `{"refresh_hz":60}`} {
		resp := post(t, ts.URL+"/v1/display-info", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: status = %s", body, resp.Status)
		}
	}
}

func TestDisplayInfo_WrongMethod(t *testing.T) {
	ts := newServer(t, nil)
	resp, err := http.Get(ts.URL + "/v1/display-info")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %s", resp.Status)
	}
}

func TestDensity(t *testing.T) {
	ts := newServer(t, nil)
	resp := post(t, ts.URL+"/v1/density", `{"x_dpi":480,"y_dpi":480}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %s", resp.Status)
	}
	var out server.DensityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Density != domain.XXHDPI {
		t.Fatalf("density = %s, want xxhdpi", out.Density)
	}

	bad := post(t, ts.URL+"/v1/density", `{"x_dpi":-1,"y_dpi":480}`)
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %s", bad.Status)
	}
}

// lockedBuffer lets the test read what the server goroutine logged.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestHealthzAndAccessLog(t *testing.T) {
	var logs lockedBuffer
	ts := newServer(t, &logs)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz = %s %q", resp.Status, body)
	}
	if !strings.Contains(logs.String(), "GET /healthz") || !strings.Contains(logs.String(), " 200 2B ") {
		t.Fatalf("access log missing entry: %q", logs.String())
	}
}
