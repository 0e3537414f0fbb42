// Package main runs displayinfod, the HTTP front end to the display
// classifiers. The API itself is documented in package server.
//
// Configuration (environment)
//
//	DISPLAYINFO_ADDR              listen address (default :8080)
//	DISPLAYINFO_SHUTDOWN_TIMEOUT  grace period for in-flight requests (default 5s)
//	DISPLAYINFO_OTEL_ENDPOINT     OTLP/HTTP traces endpoint; tracing is off when empty
//	DISPLAYINFO_OTEL_ENABLED      set to false to disable tracing with an endpoint set
//
// The daemon stops on SIGINT or SIGTERM, finishing in-flight requests first.
package main
