package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oraschemagen/oraschemagen/internal/resolver"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// Mode selects the output layout.
type Mode string

const (
	// ModeConsolidated streams every object into one document.
	ModeConsolidated Mode = "consolidated"
	// ModePartitioned writes one file per object under kind directories.
	ModePartitioned Mode = "partitioned"
)

// ParseMode validates a mode string. An unknown mode is a configuration
// error and aborts the run before any generator executes.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeConsolidated:
		return ModeConsolidated, nil
	case ModePartitioned:
		return ModePartitioned, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %q (expected %q or %q)", s, ModeConsolidated, ModePartitioned)
	}
}

const timestampLayout = "02-Jan-2006 15:04:05"

// Writer renders an object collection to the destination directory.
type Writer struct {
	Dir   string
	Mode  Mode
	RunID uuid.UUID

	now func() time.Time
}

func NewWriter(dir string, mode Mode) (*Writer, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return &Writer{Dir: dir, Mode: mode, RunID: uuid.New(), now: time.Now}, nil
}

// Write renders the collection and returns the path of the consolidated
// document, or the output root in partitioned mode.
func (w *Writer) Write(objects []*types.SQLObject, fileName string) (string, error) {
	if w.Mode == ModePartitioned {
		return w.writePartitioned(objects)
	}
	return w.writeConsolidated(objects, fileName)
}

func (w *Writer) writeConsolidated(objects []*types.SQLObject, fileName string) (string, error) {
	ordered := resolver.Order(objects)

	var b strings.Builder
	w.writeHeader(&b)
	for _, obj := range ordered {
		fmt.Fprintf(&b, "-- %s: %s\n", obj.Kind, obj.Name)
		b.WriteString(obj.Body)
		b.WriteString("\n\n")
	}
	w.writeFooter(&b)

	path := fileName
	if w.Dir != "" {
		path = filepath.Join(w.Dir, fileName)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func (w *Writer) writePartitioned(objects []*types.SQLObject) (string, error) {
	byKind := make(map[types.ObjectKind][]*types.SQLObject)
	var kinds []types.ObjectKind
	for _, obj := range objects {
		if _, seen := byKind[obj.Kind]; !seen {
			kinds = append(kinds, obj.Kind)
		}
		byKind[obj.Kind] = append(byKind[obj.Kind], obj)
	}

	for _, kind := range kinds {
		kindDir := filepath.Join(w.Dir, strings.ToLower(string(kind)))
		if err := os.MkdirAll(kindDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", kindDir, err)
		}
		for _, obj := range resolver.Order(byKind[kind]) {
			path := filepath.Join(kindDir, obj.Name+".sql")
			var b strings.Builder
			w.writeObjectHeader(&b, obj)
			b.WriteString(obj.Body)
			b.WriteString("\n\n-- End of object definition\n")
			if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
				return "", fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}
	return w.Dir, nil
}

func (w *Writer) writeHeader(b *strings.Builder) {
	fmt.Fprintf(b, `-- Export dump file generated by oraschemagen
-- Version: Oracle Database 19c Enterprise Edition Release 19.0.0.0.0
-- Run ID: %s
-- Export Timestamp: %s
-- Character Set: UTF-8

`, w.RunID, w.now().Format(timestampLayout))
}

func (w *Writer) writeFooter(b *strings.Builder) {
	fmt.Fprintf(b, `
-- Export completed successfully
-- Export Timestamp: %s
`, w.now().Format(timestampLayout))
}

func (w *Writer) writeObjectHeader(b *strings.Builder, obj *types.SQLObject) {
	deps := "None"
	if len(obj.DependsOn) > 0 {
		deps = strings.Join(obj.DependsOn, ", ")
	}
	fmt.Fprintf(b, `-- %s: %s
-- Run ID: %s
-- Generated: %s
-- Dependencies: %s

`, obj.Kind, obj.Name, w.RunID, w.now().Format(timestampLayout), deps)
}
