package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/simp-lee/txt2epub"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBook(); err != nil {
		return err
	}
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateSegmentation(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBook() error {
	if _, err := language.Parse(c.Book.Language); err != nil {
		return fmt.Errorf("book.language %q is not a valid BCP 47 tag: %w", c.Book.Language, err)
	}
	return nil
}

func (c *Config) validateEncoding() error {
	if len(c.Encoding.Candidates) == 0 {
		return errors.New("encoding.candidates must list at least one encoding")
	}
	for _, name := range c.Encoding.Candidates {
		if !txt2epub.ValidEncoding(name) {
			return fmt.Errorf("encoding.candidates: unknown encoding %q", name)
		}
	}
	return nil
}

func (c *Config) validateSegmentation() error {
	if _, err := txt2epub.NewClassifier(c.MarkerRules()); err != nil {
		return fmt.Errorf("segmentation: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be one of auto, console, json", c.Logging.Format)
	}
	return nil
}
