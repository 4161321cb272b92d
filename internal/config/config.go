package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/simp-lee/txt2epub"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	defaultConfigPath = "~/.config/txt2epub/config.toml"
	projectConfigName = "txt2epub.toml"
)

// Book contains metadata defaults applied to every converted book.
type Book struct {
	Language  string `toml:"language"`
	Author    string `toml:"author"`
	Publisher string `toml:"publisher"`
}

// Encoding contains the candidate encodings tried when decoding input.
type Encoding struct {
	Candidates []string `toml:"candidates"`
}

// Segmentation contains the marker rules used to split text into units.
type Segmentation struct {
	Anchored         bool   `toml:"anchored"`
	RequireSeparator bool   `toml:"require_separator"`
	Numerals         string `toml:"numerals"`
	ChapterWords     string `toml:"chapter_words"`
	VolumeWords      string `toml:"volume_words"`
}

// Output contains configuration for writing books.
type Output struct {
	Overwrite bool `toml:"overwrite"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for txt2epub.
type Config struct {
	Book         Book         `toml:"book"`
	Encoding     Encoding     `toml:"encoding"`
	Segmentation Segmentation `toml:"segmentation"`
	Output       Output       `toml:"output"`
	Logging      Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: the defaults are returned with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// MarkerRules returns the segmentation settings as library marker rules.
func (c *Config) MarkerRules() txt2epub.MarkerRules {
	return txt2epub.MarkerRules{
		Anchored:         c.Segmentation.Anchored,
		RequireSeparator: c.Segmentation.RequireSeparator,
		Numerals:         c.Segmentation.Numerals,
		ChapterWords:     c.Segmentation.ChapterWords,
		VolumeWords:      c.Segmentation.VolumeWords,
	}
}

// Authors returns the configured default author as a creator list.
func (c *Config) Authors() []string {
	if c.Book.Author == "" {
		return nil
	}
	return []string{c.Book.Author}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
