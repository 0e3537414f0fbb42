// Package app wires application dependencies for the CLI and the daemon.
//
// It loads Config from the environment, builds the classifiers, the state
// store and the optional remote client, and exposes them via the Wire struct
// for commands to use.
package app
