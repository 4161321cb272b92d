package txt2epub

import (
	"strings"
	"testing"
)

func mustClassifier(t *testing.T, rules MarkerRules) *Classifier {
	t.Helper()
	c, err := NewClassifier(rules)
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	return c
}

func TestClassify_DefaultRules(t *testing.T) {
	c := mustClassifier(t, DefaultRules())

	tests := []struct {
		line string
		want LineClass
	}{
		{"第一章 开端", LineChapter},
		{"第一章开端", LineChapter},
		{"第12章 回家", LineChapter},
		{"第一百零八章", LineChapter},
		{"第三千五百万章", LineChapter},
		{"第一卷 上卷", LineVolume},
		{"第二部 风起", LineVolume},
		{"第9卷", LineVolume},
		{"正文 第五章 夜", LineChapter},
		{"卷首语 第一卷", LineVolume},
		{"你好世界", LineContent},
		{"第章", LineContent},
		{"第一节 小节", LineContent},
		{"第壹章", LineContent},
		{"第１章", LineContent}, // full-width digit is not in the numeral class
		{"第一回", LineContent},
	}

	for _, tt := range tests {
		got, misplaced := c.Classify(tt.line)
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
		if misplaced {
			t.Errorf("Classify(%q) misplaced = true in unanchored mode", tt.line)
		}
	}
}

func TestClassify_VolumeTakesPrecedence(t *testing.T) {
	c := mustClassifier(t, DefaultRules())

	got, _ := c.Classify("第一卷 第一章 开端")
	if got != LineVolume {
		t.Errorf("Classify() = %v, want %v", got, LineVolume)
	}
}

func TestClassify_StrictRules(t *testing.T) {
	c := mustClassifier(t, StrictRules())

	tests := []struct {
		line          string
		want          LineClass
		wantMisplaced bool
	}{
		{"第一章 开端", LineChapter, false},
		{"第一章　开端", LineChapter, false}, // ideographic space
		{"第一章", LineChapter, false},
		{"第一章开端", LineContent, false},
		{"第一卷 上卷", LineVolume, false},
		{"正文 第五章 夜", LineContent, true},
		{"卷首语 第一卷 起", LineContent, true},
		{"他说第三章 很长", LineContent, true},
		{"普通的一行", LineContent, false},
	}

	for _, tt := range tests {
		got, misplaced := c.Classify(tt.line)
		if got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
		if misplaced != tt.wantMisplaced {
			t.Errorf("Classify(%q) misplaced = %v, want %v", tt.line, misplaced, tt.wantMisplaced)
		}
	}
}

func TestClassify_VolumeDetectionDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.VolumeWords = ""
	c := mustClassifier(t, rules)

	if got, _ := c.Classify("第一卷 上卷"); got != LineContent {
		t.Errorf("Classify() = %v, want %v", got, LineContent)
	}
	if got, _ := c.Classify("第一章 开端"); got != LineChapter {
		t.Errorf("Classify() = %v, want %v", got, LineChapter)
	}
}

func TestClassify_CustomWords(t *testing.T) {
	rules := DefaultRules()
	rules.ChapterWords = "章回节"
	rules.Numerals = DefaultNumerals + "零壹贰叁"
	c := mustClassifier(t, rules)

	for _, line := range []string{"第一回 宴桃园", "第叁节", "第5章"} {
		if got, _ := c.Classify(line); got != LineChapter {
			t.Errorf("Classify(%q) = %v, want %v", line, got, LineChapter)
		}
	}
}

func TestClassify_SpecialCharsEscaped(t *testing.T) {
	rules := DefaultRules()
	rules.Numerals = "0123456789-^]"
	c := mustClassifier(t, rules)

	if got, _ := c.Classify("第1-2章"); got != LineChapter {
		t.Errorf("Classify(%q) = %v, want %v", "第1-2章", got, LineChapter)
	}
	if got, _ := c.Classify("第a章"); got != LineContent {
		t.Errorf("Classify(%q) = %v, want %v", "第a章", got, LineContent)
	}
}

func TestNewClassifier_InvalidRules(t *testing.T) {
	tests := []struct {
		name  string
		rules MarkerRules
		want  string
	}{
		{"no numerals", MarkerRules{ChapterWords: "章"}, "numerals"},
		{"no chapter words", MarkerRules{Numerals: "一"}, "chapter words"},
		{"overlap", MarkerRules{Numerals: "一", ChapterWords: "章卷", VolumeWords: "卷"}, "both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.rules)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLineClass_String(t *testing.T) {
	if LineContent.String() != "content" || LineChapter.String() != "chapter" || LineVolume.String() != "volume" {
		t.Errorf("unexpected LineClass names: %s %s %s", LineContent, LineChapter, LineVolume)
	}
}
