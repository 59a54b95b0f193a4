package meta

import (
	"bufio"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scriptscan/internal/logging"
	"scriptscan/internal/textio"
)

// DefaultSuffix marks the sidecar files Unity writes next to C# sources.
const DefaultSuffix = ".cs.meta"

const guidKey = "guid: "

// Catalog is the set of script GUIDs declared by sidecar files.
// GUIDs are stored as read; Unity writes them lowercase and lookups
// lowercase their input before calling Has.
type Catalog struct {
	guids map[string]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() Catalog {
	return Catalog{guids: make(map[string]struct{})}
}

// Add records a GUID.
func (c Catalog) Add(guid string) {
	c.guids[guid] = struct{}{}
}

// Has reports whether guid was collected.
func (c Catalog) Has(guid string) bool {
	_, ok := c.guids[guid]
	return ok
}

// Len returns the number of distinct GUIDs collected.
func (c Catalog) Len() int {
	return len(c.guids)
}

// Collect walks root and records the GUID declared by every sidecar
// whose name ends with suffix. Unreadable entries are skipped: an
// uncollected GUID can only cause a reference to be reported as
// missing downstream, never a crash, so the walk always completes and
// always returns a catalog.
func Collect(ctx context.Context, root, suffix string, logger *slog.Logger) Catalog {
	if logger == nil {
		logger = logging.NewNop()
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}

	catalog := NewCatalog()
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logger.Debug("skipping unreadable entry",
				logging.Args(logging.String(logging.FieldPath, path), logging.Error(err))...)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		guid, ok := readGUID(path)
		if !ok {
			logger.Debug("sidecar without guid",
				logging.Args(logging.String(logging.FieldPath, path))...)
			return nil
		}
		catalog.Add(guid)
		return nil
	})
	return catalog
}

// readGUID returns the value of the first "guid: " line in the sidecar
// at path. Sidecars declare exactly one GUID, so the rest of the file
// is not read.
func readGUID(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(textio.NewReader(file))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, guidKey) {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		guid := strings.TrimSpace(value)
		if guid == "" {
			return "", false
		}
		return guid, true
	}
	return "", false
}
