package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTools(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTools() error {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.MKVMerge = strings.TrimSpace(c.Tools.MKVMerge)
	var err error
	// Bare names are resolved through PATH; only explicit paths are expanded.
	if strings.ContainsAny(c.Tools.FFmpeg, `/\`) {
		if c.Tools.FFmpeg, err = expandPath(c.Tools.FFmpeg); err != nil {
			return fmt.Errorf("tools.ffmpeg: %w", err)
		}
	}
	if strings.ContainsAny(c.Tools.MKVMerge, `/\`) {
		if c.Tools.MKVMerge, err = expandPath(c.Tools.MKVMerge); err != nil {
			return fmt.Errorf("tools.mkvmerge: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
