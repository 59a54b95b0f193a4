package assets

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"scriptscan/internal/logging"
	"scriptscan/internal/meta"
	"scriptscan/internal/textio"
)

// scriptRef matches the serialized record Unity writes for a
// MonoBehaviour's script binding. The 11500000 fileID discriminates
// script components from the many other reference kinds that share the
// generic {fileID, guid} record shape, which is what lets the scanner
// get away without parsing the serialization format.
var scriptRef = regexp.MustCompile(`(?i)m_Script:\s*\{fileID:\s*11500000,\s*guid:\s*([0-9a-f]{32})`)

// DefaultExtensions lists the text-serialized asset types Unity emits.
var DefaultExtensions = []string{".prefab", ".unity", ".asset"}

// MissingReference records a script binding whose GUID has no sidecar
// anywhere under the project root. Path is slash-separated and relative
// to the project root; GUID is lowercase.
type MissingReference struct {
	Path string `json:"path"`
	GUID string `json:"guid"`
}

// Report is the raw outcome of one scan pass.
type Report struct {
	Missing []MissingReference
	Scanned int
}

// Scanner checks serialized assets for script references absent from a
// GUID catalog.
type Scanner struct {
	root       string
	extensions map[string]struct{}
	logger     *slog.Logger
}

// NewScanner returns a scanner reporting paths relative to root. A nil
// extensions slice selects DefaultExtensions.
func NewScanner(root string, extensions []string, logger *slog.Logger) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{
		root:       root,
		extensions: extSet,
		logger:     logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan walks dir and reports, per offending file, the first script
// reference whose GUID is absent from catalog. A nonexistent dir is an
// empty scan, not an error; unreadable files are skipped. The catalog
// must be fully collected before Scan runs.
func (s *Scanner) Scan(ctx context.Context, dir string, catalog meta.Catalog) (*Report, error) {
	report := &Report{}

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, nil
		}
		return nil, err
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			s.logger.Debug("skipping unreadable entry",
				logging.Args(logging.String(logging.FieldPath, path), logging.Error(err))...)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(d.Name()))]; !ok {
			return nil
		}

		report.Scanned++
		if ref, ok := s.checkFile(path, catalog); ok {
			report.Missing = append(report.Missing, ref)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// checkFile returns the first reference in the file whose GUID is not
// in the catalog. One diagnostic per offending file keeps the report at
// "fix this file" granularity instead of enumerating every broken
// binding inside it.
func (s *Scanner) checkFile(path string, catalog meta.Catalog) (MissingReference, bool) {
	content, err := textio.ReadFile(path)
	if err != nil {
		s.logger.Debug("skipping unreadable asset",
			logging.Args(logging.String(logging.FieldPath, path), logging.Error(err))...)
		return MissingReference{}, false
	}

	for _, match := range scriptRef.FindAllStringSubmatch(content, -1) {
		guid := strings.ToLower(match[1])
		if catalog.Has(guid) {
			continue
		}
		rel := s.relativePath(path)
		s.logger.Debug("missing script reference",
			logging.Args(logging.String(logging.FieldPath, rel), logging.String(logging.FieldGUID, guid))...)
		return MissingReference{Path: rel, GUID: guid}, true
	}
	return MissingReference{}, false
}

func (s *Scanner) relativePath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
