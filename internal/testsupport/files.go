package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// GUID returns a deterministic 32-character hex token derived from seed.
func GUID(seed byte) string {
	return strings.Repeat(fmt.Sprintf("%02x", seed), 16)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMeta writes the sidecar for the script at rel (slash-separated,
// relative to root) declaring guid, mirroring the shape Unity produces.
func WriteMeta(t testing.TB, root, rel, guid string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel)+".meta")
	content := "fileFormatVersion: 2\nguid: " + guid + "\nMonoImporter:\n  externalObjects: {}\n"
	WriteFile(t, path, content)
}

// ScriptReference returns the serialized component fragment binding a
// MonoBehaviour to the script named by guid.
func ScriptReference(guid string) string {
	return "  m_Script: {fileID: 11500000, guid: " + guid + ", type: 3}\n"
}

// Asset builds a minimal text-serialized asset document embedding one
// component record per guid, in order.
func Asset(guids ...string) string {
	var b strings.Builder
	b.WriteString("%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n")
	for i, guid := range guids {
		fmt.Fprintf(&b, "--- !u!114 &%d\nMonoBehaviour:\n  m_Enabled: 1\n", i+1)
		b.WriteString(ScriptReference(guid))
	}
	return b.String()
}

// WriteAsset writes an asset file at rel (slash-separated, relative to
// root) referencing the given guids.
func WriteAsset(t testing.TB, root, rel string, guids ...string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), Asset(guids...))
}
