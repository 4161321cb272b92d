package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one header line per record followed by indented
// key/value lines:
//
//	12:30:00 INFO  [convert] – book written
//	    - output: novel.epub
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []kv // flattened with the groups open at WithAttrs time
	groups []string
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: w, level: lvl}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	kvs := append(make([]kv, 0, len(h.attrs)+record.NumAttrs()), h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		flattenAttr(&kvs, h.groups, a)
		return true
	})

	var component string
	fields := make([]kv, 0, len(kvs))
	for _, f := range kvs {
		if f.key == FieldComponent {
			if component == "" {
				component = f.value
			}
			continue
		}
		fields = append(fields, f)
	}

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var buf bytes.Buffer
	buf.WriteString(timestamp.Format(time.TimeOnly))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	if component != "" {
		buf.WriteString(" [")
		buf.WriteString(component)
		buf.WriteByte(']')
	}
	buf.WriteString(" – ")
	buf.WriteString(message)
	buf.WriteByte('\n')
	for _, f := range fields {
		buf.WriteString("    - ")
		buf.WriteString(f.key)
		buf.WriteString(": ")
		buf.WriteString(f.value)
		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append([]kv(nil), h.attrs...)
	for _, a := range attrs {
		flattenAttr(&clone.attrs, h.groups, a)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

type kv struct {
	key   string
	value string
}

func flattenAttr(out *[]kv, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		sub := groups
		if attr.Key != "" {
			sub = append(append([]string(nil), groups...), attr.Key)
		}
		for _, a := range attr.Value.Group() {
			flattenAttr(out, sub, a)
		}
		return
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	*out = append(*out, kv{key: key, value: formatValue(attr.Value)})
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return fmt.Sprint(v.Any())
	}
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN "
	case level >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}
