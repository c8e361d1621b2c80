// Package logger provides leveled, colored output for the sealedbox CLI.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown on the error stream.
//
// # Usage
//
//	log := logger.Logger{Verbose: verbose, Debug: debug, Out: stdout, Err: stderr}
//	log.Infof("sealed %d bytes", n)
//
// Never pass key material to any log method; log sizes, paths and
// fingerprints instead.
package logger
