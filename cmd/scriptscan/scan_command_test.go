package main

import (
	"encoding/json"
	"testing"

	"scriptscan/internal/testsupport"
)

func TestScanCommandPlainOutput(t *testing.T) {
	root := t.TempDir()
	known := testsupport.GUID(0x01)
	missing := testsupport.GUID(0xde)

	testsupport.WriteMeta(t, root, "Assets/Scripts/Known.cs", known)
	testsupport.WriteAsset(t, root, "Assets/Fine.prefab", known)
	testsupport.WriteAsset(t, root, "Assets/Broken.prefab", missing)

	stdout, _, err := runCLI(t, "scan", root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := "Assets/Broken.prefab -> " + missing + "\n"
	if stdout != want {
		t.Fatalf("unexpected output:\ngot  %q\nwant %q", stdout, want)
	}
}

func TestScanCommandCleanOutput(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := runCLI(t, "scan", root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if stdout != "No missing scripts under Assets\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestScanCommandFindingsDoNotFail(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteAsset(t, root, "Assets/Broken.unity", testsupport.GUID(0x99))

	// Findings are reported via stdout, never via exit status.
	if _, _, err := runCLI(t, "scan", root); err != nil {
		t.Fatalf("scan with findings should succeed: %v", err)
	}
}

func TestScanCommandJSONOutput(t *testing.T) {
	root := t.TempDir()
	missing := testsupport.GUID(0x0f)
	testsupport.WriteAsset(t, root, "Assets/Broken.asset", missing)

	stdout, _, err := runCLI(t, "scan", root, "--format", "json")
	if err != nil {
		t.Fatalf("scan --format json: %v", err)
	}

	var payload struct {
		AssetsDir     string `json:"assets_dir"`
		RunID         string `json:"run_id"`
		KnownScripts  int    `json:"known_scripts"`
		AssetsScanned int    `json:"assets_scanned"`
		Missing       []struct {
			Path string `json:"path"`
			GUID string `json:"guid"`
		} `json:"missing"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if payload.AssetsDir != "Assets" || payload.AssetsScanned != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.RunID == "" {
		t.Fatal("expected run_id in payload")
	}
	if len(payload.Missing) != 1 || payload.Missing[0].GUID != missing {
		t.Fatalf("unexpected missing list: %+v", payload.Missing)
	}
}

func TestScanCommandTableFallsBackWhenPiped(t *testing.T) {
	root := t.TempDir()
	missing := testsupport.GUID(0x31)
	testsupport.WriteAsset(t, root, "Assets/Broken.prefab", missing)

	// Test stdout is a buffer, not a terminal, so table output must
	// degrade to the plain line format.
	stdout, _, err := runCLI(t, "scan", root, "--format", "table")
	if err != nil {
		t.Fatalf("scan --format table: %v", err)
	}
	if stdout != "Assets/Broken.prefab -> "+missing+"\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
}

func TestScanCommandMissingRoot(t *testing.T) {
	_, _, err := runCLI(t, "scan", "/definitely/not/a/project")
	if err == nil {
		t.Fatal("expected error for missing project root")
	}
}

func TestScanCommandRejectsBadFormat(t *testing.T) {
	root := t.TempDir()
	_, _, err := runCLI(t, "scan", root, "--format", "xml")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	requireContains(t, err.Error(), "unsupported format")
}

func TestScanCommandCustomAssetsDir(t *testing.T) {
	root := t.TempDir()
	missing := testsupport.GUID(0x71)
	testsupport.WriteAsset(t, root, "Content/Level.unity", missing)

	stdout, _, err := runCLI(t, "scan", root, "--assets-dir", "Content")
	if err != nil {
		t.Fatalf("scan --assets-dir: %v", err)
	}
	if stdout != "Content/Level.unity -> "+missing+"\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}
}
