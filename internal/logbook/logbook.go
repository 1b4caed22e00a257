// Package logbook writes ritual practice sessions to flat text files.
//
// One session is one file; the file name carries the session timestamp and
// the body is a fixed human-readable layout. There is no other persistence
// and no indexing: the log folder is the database.
package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rose.logbook'
func tracer() tracing.Trace {
	return tracing.Select("rose.logbook")
}

// Rituals is the fixed roster of practices the planner tracks, in display
// order.
var Rituals = []string{"LIRP", "RR", "LBRP", "LIRH", "MP", "GIRP", "GIRH", "RC"}

// RitualNote records whether one ritual of the roster was performed, with an
// optional note.
type RitualNote struct {
	Name      string
	Performed bool
	Note      string
}

// Context is the almanac and weather context captured with a session, as
// display strings.
type Context struct {
	Date          string
	Time          string
	Day           string
	Quarter       string
	MoonPhase     string
	Weather       string
	PlanetaryHour string
}

// Entry is one practice session.
type Entry struct {
	When              time.Time
	Context           Context
	PhysicalCondition string
	Meditation        string
	Tarot             string
	Rituals           []RitualNote
}

// Filename derives the log file name from the session timestamp.
func (e *Entry) Filename() string {
	return "log_" + e.When.Format("2006-01-02_03-04-05_PM") + ".txt"
}

// Text renders the entry in the flat-file layout.
func (e *Entry) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Date: %s\n", e.Context.Date)
	fmt.Fprintf(&sb, "Time: %s\n", e.Context.Time)
	fmt.Fprintf(&sb, "Day: %s\n", e.Context.Day)
	fmt.Fprintf(&sb, "Elemental Quarter: %s\n", e.Context.Quarter)
	fmt.Fprintf(&sb, "Moon Phase: %s\n", e.Context.MoonPhase)
	fmt.Fprintf(&sb, "Weather: %s\n", e.Context.Weather)
	fmt.Fprintf(&sb, "Planetary Hour: %s\n", e.Context.PlanetaryHour)
	fmt.Fprintf(&sb, "Physical Condition: %s\n", e.PhysicalCondition)
	fmt.Fprintf(&sb, "Meditation Notes: %s\n", e.Meditation)
	fmt.Fprintf(&sb, "Tarot Notes: %s\n", e.Tarot)
	sb.WriteString("Rituals:\n")
	for _, r := range e.Rituals {
		status := "Not Performed"
		if r.Performed {
			status = "Performed"
		}
		fmt.Fprintf(&sb, "  %s: %s, Notes: %s\n", r.Name, status, r.Note)
	}
	return sb.String()
}

// Book is a log folder. The folder is created on construction and never
// cleaned up by this package.
type Book struct {
	dir string
}

// New opens (and if needed creates) the log folder at dir.
func New(dir string) (*Book, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logbook: creating log folder: %w", err)
	}
	return &Book{dir: dir}, nil
}

// Dir returns the log folder path.
func (b *Book) Dir() string {
	return b.dir
}

// Write stores an entry as a new log file and returns its path.
func (b *Book) Write(e *Entry) (string, error) {
	path := filepath.Join(b.dir, e.Filename())
	if err := os.WriteFile(path, []byte(e.Text()), 0o644); err != nil {
		return "", fmt.Errorf("logbook: writing session log: %w", err)
	}
	tracer().Infof("session logged to %s", path)
	return path, nil
}
