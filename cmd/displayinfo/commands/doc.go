// Package commands defines the displayinfo CLI and wires dependencies for subcommands.
//
// Commands
//
//   - build        Classify a display snapshot from flags, a file or the environment
//   - density      Print the density bucket for an x/y DPI pair
//   - size         Print the physical size class for a pixel size and DPI pair
//   - restore      Render the saved display record
//   - fingerprint  Print the short fingerprint of the saved record
//
// # Implementation
//
// The root command loads app.Config from the environment, applies flag
// overrides and builds the dependency graph (classifiers, state store,
// optional displayinfod client) before any subcommand runs.
package commands
