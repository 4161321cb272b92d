package txt2epub

import (
	"fmt"
	"regexp"
	"strings"
)

// Default marker character classes.
const (
	DefaultNumerals     = "零一二三四五六七八九十百千万0123456789"
	DefaultChapterWords = "章"
	DefaultVolumeWords  = "卷部"
)

// MarkerRules configures how marker lines are recognised. A marker is the
// token 第, a run of one or more Numerals, then one unit word.
type MarkerRules struct {
	// Anchored requires the marker to start the line. When false the
	// marker may appear anywhere in the line.
	Anchored bool

	// RequireSeparator requires whitespace or end of line right after
	// the unit word.
	RequireSeparator bool

	// Numerals lists the characters accepted between 第 and the unit word.
	Numerals string

	// ChapterWords lists the unit words that mark a chapter.
	ChapterWords string

	// VolumeWords lists the unit words that mark a volume. Empty disables
	// volume detection.
	VolumeWords string
}

// DefaultRules returns unanchored substring matching with the default
// character classes.
func DefaultRules() MarkerRules {
	return MarkerRules{
		Numerals:     DefaultNumerals,
		ChapterWords: DefaultChapterWords,
		VolumeWords:  DefaultVolumeWords,
	}
}

// StrictRules returns the anchored variant that also requires a separator
// after the unit word, e.g. "第一章 开端" but not "第一章开端".
func StrictRules() MarkerRules {
	r := DefaultRules()
	r.Anchored = true
	r.RequireSeparator = true
	return r
}

// LineClass is the classification of a non-blank line.
type LineClass int

const (
	// LineContent is body text.
	LineContent LineClass = iota

	// LineChapter is a chapter marker.
	LineChapter

	// LineVolume is a volume marker.
	LineVolume
)

// String returns the lower-case class name.
func (c LineClass) String() string {
	switch c {
	case LineChapter:
		return "chapter"
	case LineVolume:
		return "volume"
	default:
		return "content"
	}
}

// Classifier applies compiled MarkerRules to lines. It is safe for
// concurrent use.
type Classifier struct {
	anchored bool

	volume  *regexp.Regexp // nil when volume detection is disabled
	chapter *regexp.Regexp

	// Unanchored forms, used in anchored mode to detect misplaced markers.
	volumeAnywhere  *regexp.Regexp
	chapterAnywhere *regexp.Regexp
}

// NewClassifier validates rules and compiles them.
func NewClassifier(rules MarkerRules) (*Classifier, error) {
	if rules.Numerals == "" {
		return nil, fmt.Errorf("txt2epub: marker rules: numerals must not be empty")
	}
	if rules.ChapterWords == "" {
		return nil, fmt.Errorf("txt2epub: marker rules: chapter words must not be empty")
	}
	for _, r := range rules.VolumeWords {
		if strings.ContainsRune(rules.ChapterWords, r) {
			return nil, fmt.Errorf("txt2epub: marker rules: %q is both a chapter and a volume word", r)
		}
	}

	c := &Classifier{anchored: rules.Anchored}

	var err error
	if c.chapter, err = compileMarker(rules, rules.ChapterWords, rules.Anchored); err != nil {
		return nil, err
	}
	if c.chapterAnywhere, err = compileMarker(rules, rules.ChapterWords, false); err != nil {
		return nil, err
	}
	if rules.VolumeWords != "" {
		if c.volume, err = compileMarker(rules, rules.VolumeWords, rules.Anchored); err != nil {
			return nil, err
		}
		if c.volumeAnywhere, err = compileMarker(rules, rules.VolumeWords, false); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Classify returns the class of a trimmed, non-empty line. Volume markers
// take precedence over chapter markers.
//
// misplaced reports that, under anchored rules, the line carries a marker
// that does not start the line. Such lines are classified LineContent.
func (c *Classifier) Classify(line string) (class LineClass, misplaced bool) {
	if c.volume != nil && c.volume.MatchString(line) {
		return LineVolume, false
	}
	if c.chapter.MatchString(line) {
		return LineChapter, false
	}
	if c.anchored {
		if c.volumeAnywhere != nil && c.volumeAnywhere.MatchString(line) {
			return LineContent, true
		}
		if c.chapterAnywhere.MatchString(line) {
			return LineContent, true
		}
	}
	return LineContent, false
}

// compileMarker builds the pattern 第[numerals]+[words], optionally anchored
// at line start and followed by a separator.
func compileMarker(rules MarkerRules, words string, anchored bool) (*regexp.Regexp, error) {
	var sb strings.Builder
	if anchored {
		sb.WriteByte('^')
	}
	sb.WriteString("第[")
	sb.WriteString(charClass(rules.Numerals))
	sb.WriteString("]+[")
	sb.WriteString(charClass(words))
	sb.WriteByte(']')
	if rules.RequireSeparator {
		sb.WriteString(`(?:[\s\p{Zs}]|$)`)
	}

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("txt2epub: compile marker pattern: %w", err)
	}
	return re, nil
}

// charClass escapes the characters that are special inside a bracket
// expression.
func charClass(chars string) string {
	var sb strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
