// Package remote provides an HTTP implementation of domain.RemoteClient for
// talking to a displayinfod service.
//
// Supported operations include:
//   - Building a DisplayInfo from a snapshot.
//   - Classifying a DPI pair into a density bucket.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the path, status
// text and the server's error message to aid diagnostics. The active trace
// context is propagated in W3C headers.
package remote
