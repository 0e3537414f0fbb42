// Package server exposes the display classifiers over HTTP.
//
// HTTP API
//
//	POST /v1/display-info
//	    Body: a Snapshot ({"width_px","height_px","x_dpi","y_dpi","density"}).
//	    Returns the flat DisplayInfo record.
//
//	POST /v1/density
//	    Body: {"x_dpi","y_dpi"}. Returns {"density":"<bucket>"}.
//
//	GET /healthz
//	    Liveness probe; returns "ok".
//
// Behaviour
//
//   - The server holds no state; every request is classified independently.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - Invalid measurements and malformed bodies are 400, wrong methods 405.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - Each classification runs in an OpenTelemetry span; incoming W3C trace
//     context is honoured.
package server
