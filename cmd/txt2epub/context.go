package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/simp-lee/txt2epub"
	"github.com/simp-lee/txt2epub/internal/config"
	"github.com/simp-lee/txt2epub/internal/logging"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
	encodings []string
	anchored  bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the command logger, letting flags override the configured
// level and format.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	opts := logging.Options{Writer: w}
	if c.config != nil {
		opts.Level = c.config.Logging.Level
		opts.Format = c.config.Logging.Format
	}
	if v := strings.TrimSpace(c.flags.logLevel); v != "" {
		opts.Level = v
	}
	if v := strings.TrimSpace(c.flags.logFormat); v != "" {
		opts.Format = v
	}
	return logging.New(opts)
}

// convertOptions returns the library options for the loaded config and
// the persistent flags.
func (c *commandContext) convertOptions(logger *slog.Logger) txt2epub.Options {
	cfg := c.config
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}

	rules := cfg.MarkerRules()
	if c.flags.anchored {
		rules.Anchored = true
		rules.RequireSeparator = true
	}

	encodings := cfg.Encoding.Candidates
	if len(c.flags.encodings) > 0 {
		encodings = c.flags.encodings
	}

	return txt2epub.Options{
		Encodings: encodings,
		Rules:     &rules,
		Logger:    logger,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
