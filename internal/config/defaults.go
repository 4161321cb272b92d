package config

import "github.com/simp-lee/txt2epub"

const (
	defaultLanguage  = txt2epub.DefaultLanguage
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
	defaultOverwrite = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	rules := txt2epub.DefaultRules()
	return Config{
		Book: Book{
			Language: defaultLanguage,
		},
		Encoding: Encoding{
			Candidates: append([]string(nil), txt2epub.DefaultEncodings...),
		},
		Segmentation: Segmentation{
			Anchored:         rules.Anchored,
			RequireSeparator: rules.RequireSeparator,
			Numerals:         rules.Numerals,
			ChapterWords:     rules.ChapterWords,
			VolumeWords:      rules.VolumeWords,
		},
		Output: Output{
			Overwrite: defaultOverwrite,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
