package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeBook()
	c.normalizeEncoding()
	c.normalizeLogging()
}

func (c *Config) normalizeBook() {
	c.Book.Language = strings.TrimSpace(c.Book.Language)
	if c.Book.Language == "" {
		c.Book.Language = defaultLanguage
	}
	c.Book.Author = strings.TrimSpace(c.Book.Author)
	if c.Book.Author == "" {
		if value, ok := os.LookupEnv("TXT2EPUB_AUTHOR"); ok {
			c.Book.Author = strings.TrimSpace(value)
		}
	}
	c.Book.Publisher = strings.TrimSpace(c.Book.Publisher)
}

func (c *Config) normalizeEncoding() {
	seen := make(map[string]bool, len(c.Encoding.Candidates))
	out := c.Encoding.Candidates[:0]
	for _, name := range c.Encoding.Candidates {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	c.Encoding.Candidates = out
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "":
		c.Logging.Format = defaultLogFormat
	case "text":
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if value, ok := os.LookupEnv("TXT2EPUB_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
}
