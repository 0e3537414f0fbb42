package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"displayinfo/internal/domain"
)

const (
	// maxBodyBytes caps request bodies; a snapshot is a handful of numbers.
	maxBodyBytes = 64 << 10

	tracerName = "displayinfo/internal/server"
)

// DensityRequest is the body of POST /v1/density.
type DensityRequest struct {
	XDpi float64 `json:"x_dpi"`
	YDpi float64 `json:"y_dpi"`
}

// DensityResponse is the body returned by POST /v1/density.
type DensityResponse struct {
	Density domain.DensityBucket `json:"density"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the classifiers over HTTP.
type Server struct {
	builder domain.DisplayInfoBuilder
	density domain.DensityClassifier
	tracer  trace.Tracer
	log     *log.Logger
}

// New returns a Server. A nil logger uses log.Default().
func New(builder domain.DisplayInfoBuilder, density domain.DensityClassifier, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		builder: builder,
		density: density,
		tracer:  otel.Tracer(tracerName),
		log:     logger,
	}
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/display-info", s.handleDisplayInfo)
	mux.HandleFunc("POST /v1/density", s.handleDensity)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return s.accessLog(mux)
}

func (s *Server) handleDisplayInfo(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	_, span := s.tracer.Start(ctx, "display.Build")
	defer span.End()

	var snap domain.Snapshot
	if err := decodeBody(w, r, &snap); err != nil {
		fail(span, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	span.SetAttributes(
		attribute.Int("display.width_px", snap.WidthPixels),
		attribute.Int("display.height_px", snap.HeightPixels),
		attribute.Float64("display.x_dpi", snap.XDpi),
		attribute.Float64("display.y_dpi", snap.YDpi),
		attribute.Float64("display.density", snap.Density),
	)

	info, err := s.builder.Build(snap)
	if err != nil {
		fail(span, err)
		writeError(w, statusFor(err), err)
		return
	}
	span.SetAttributes(
		attribute.String("display.bucket", info.Density().String()),
		attribute.String("display.category", info.Category().String()),
		attribute.String("display.diagonal", info.Diagonal().String()),
	)
	writeJSON(w, http.StatusOK, info.Record())
}

func (s *Server) handleDensity(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	_, span := s.tracer.Start(ctx, "density.Classify")
	defer span.End()

	var req DensityRequest
	if err := decodeBody(w, r, &req); err != nil {
		fail(span, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bucket, err := s.density.ClassifyDensity(req.XDpi, req.YDpi)
	if err != nil {
		fail(span, err)
		writeError(w, statusFor(err), err)
		return
	}
	span.SetAttributes(attribute.String("display.bucket", bucket.String()))
	writeJSON(w, http.StatusOK, DensityResponse{Density: bucket})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidMeasurement) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
