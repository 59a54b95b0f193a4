package scan

import (
	"fmt"
	"sort"
	"time"

	"scriptscan/internal/assets"
)

// Summary is the outcome of one pipeline run.
type Summary struct {
	Root      string
	AssetsDir string
	RunID     string
	Known     int
	Scanned   int
	Missing   []assets.MissingReference
	Elapsed   time.Duration
}

// Clean reports whether no missing references were found.
func (s *Summary) Clean() bool {
	return len(s.Missing) == 0
}

// Lines renders the plain report: one "path -> guid" line per missing
// reference, or a single all-clear line.
func (s *Summary) Lines() []string {
	if s.Clean() {
		return []string{fmt.Sprintf("No missing scripts under %s", s.AssetsDir)}
	}
	lines := make([]string, 0, len(s.Missing))
	for _, ref := range s.Missing {
		lines = append(lines, fmt.Sprintf("%s -> %s", ref.Path, ref.GUID))
	}
	return lines
}

// sortedUnique deduplicates references by (path, guid) and orders them
// by path then guid so reports are stable across runs.
func sortedUnique(refs []assets.MissingReference) []assets.MissingReference {
	seen := make(map[assets.MissingReference]struct{}, len(refs))
	out := make([]assets.MissingReference, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].GUID < out[j].GUID
	})
	return out
}
