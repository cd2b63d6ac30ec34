// Package config loads, normalizes, and validates trackmux configuration data.
//
// The configuration file is optional and only covers ambient settings: which
// ffmpeg and mkvmerge binaries to execute, how logs are formatted and where
// they are written, and whether the working directory is locked during a run.
// Stream selection always comes from the command line.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
