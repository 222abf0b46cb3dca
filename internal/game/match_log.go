package game

import (
	"fmt"
	"strings"
)

// Match log categories.
const (
	logShot        = "shot"
	logHit         = "hit"
	logWallBounce  = "wall_bounce"
	logActorBounce = "actor_bounce"
	logCull        = "cull"
	logRoundOver   = "round_over"
)

// MatchLogEntry is one event recorded during an arena round.
type MatchLogEntry struct {
	Frame    int
	Side     string // "red", "blue", or "--" for round-wide events
	Category string // shot, hit, wall_bounce, actor_bounce, cull, round_over
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] red  hit          blue health 99
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-4s %-12s %s", e.Frame, e.Side, e.Category, e.Value)
}

// MatchLog collects structured events for one round. It is unbounded and
// machine-readable; rounds are short.
type MatchLog struct {
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. Verbose logs also record culls and wall bounces.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry.
func (ml *MatchLog) Add(frame int, side, category, value string, numVal float64) {
	ml.entries = append(ml.entries, MatchLogEntry{
		Frame:    frame,
		Side:     side,
		Category: category,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(frame int, side, category, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(frame, side, category, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []MatchLogEntry {
	return ml.entries
}

// Filter returns entries matching category and side. Empty matches anything.
func (ml *MatchLog) Filter(category, side string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if side != "" && e.Side != side {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and side.
func (ml *MatchLog) Count(category, side string) int {
	return len(ml.Filter(category, side))
}

// FirstOf returns the earliest entry matching category and side.
func (ml *MatchLog) FirstOf(category, side string) (MatchLogEntry, bool) {
	for _, e := range ml.entries {
		if e.Category == category && (side == "" || e.Side == side) {
			return e, true
		}
	}
	return MatchLogEntry{}, false
}

// Format returns the whole log, one entry per line.
func (ml *MatchLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
