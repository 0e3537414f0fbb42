package app

import (
	"net/http"
	"time"

	"displayinfo/internal/domain"
	"displayinfo/internal/remote"
	densitysvc "displayinfo/internal/services/density"
	displaysvc "displayinfo/internal/services/display"
	sizesvc "displayinfo/internal/services/size"
	"displayinfo/internal/store"
)

const defaultHTTPTimeout = 10 * time.Second

// Wire bundles the classifiers, the state store and the optional remote
// client for the CLI and the daemon.
type Wire struct {
	Density domain.DensityClassifier
	Size    domain.SizeClassifier
	Builder domain.DisplayInfoBuilder
	State   domain.DisplayInfoStore
	Remote  domain.RemoteClient // nil unless cfg.RemoteURL is set
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	// Pure classifiers
	densityClassifier := densitysvc.New()
	sizeClassifier := sizesvc.New()
	builder := displaysvc.New(densityClassifier, sizeClassifier)

	var rc domain.RemoteClient
	if cfg.RemoteURL != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = &http.Client{Timeout: defaultHTTPTimeout}
		}
		rc = remote.NewHTTP(cfg.RemoteURL, httpClient)
	}

	return &Wire{
		Density: densityClassifier,
		Size:    sizeClassifier,
		Builder: builder,
		State:   store.NewStateFileStore(cfg.Home),
		Remote:  rc,
	}, nil
}
