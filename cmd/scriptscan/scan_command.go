package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scriptscan/internal/config"
	"scriptscan/internal/logging"
	"scriptscan/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var rootFlag string
	var assetsFlag string
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a Unity project for missing script references",
		Long: `Scan a Unity project for serialized script references whose GUID has no
matching *.cs.meta sidecar anywhere under the project root.

The project root comes from configuration, the positional argument, or
--root; it defaults to the working directory. Findings are written to
stdout, one "relative/path -> guid" line per offending asset; exit
status is 0 whether or not anything is missing.

Examples:
  scriptscan scan                     # Scan the configured project root
  scriptscan scan ~/game              # Scan a specific project
  scriptscan scan --format json       # Machine-readable findings`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			root := rootFlag
			if len(args) > 0 {
				root = args[0]
			}
			if strings.TrimSpace(root) != "" {
				expanded, err := config.ExpandPath(root)
				if err != nil {
					return fmt.Errorf("resolve project root: %w", err)
				}
				cfg.Project.Root = expanded
			}
			if strings.TrimSpace(assetsFlag) != "" {
				cfg.Project.AssetsDir = strings.Trim(strings.TrimSpace(assetsFlag), "/")
			}

			format := cfg.Output.Format
			if strings.TrimSpace(formatFlag) != "" {
				format = strings.ToLower(strings.TrimSpace(formatFlag))
			}
			switch format {
			case "plain", "table", "json":
			default:
				return fmt.Errorf("unsupported format %q (plain, table, json)", format)
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			summary, err := scan.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(cmd, summaryJSON(summary))
			case "table":
				if stdoutIsTerminal() && !summary.Clean() {
					printSummaryTable(out, summary)
					return nil
				}
				// Piped table output degrades to the plain line format
				// so downstream tooling keeps working.
				fallthrough
			default:
				for _, line := range summary.Lines() {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", "", "Project root to scan (default: configured project.root)")
	cmd.Flags().StringVar(&assetsFlag, "assets-dir", "", "Assets subtree relative to the root (default: configured project.assets_dir)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Report format: plain, table, or json (default: configured output.format)")

	return cmd
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printSummaryTable(out io.Writer, summary *scan.Summary) {
	rows := make([][]string, 0, len(summary.Missing))
	for _, ref := range summary.Missing {
		rows = append(rows, []string{ref.Path, ref.GUID})
	}
	fmt.Fprintln(out, renderTable([]string{"Asset", "Missing GUID"}, rows))
}

type summaryPayload struct {
	Root          string              `json:"root"`
	AssetsDir     string              `json:"assets_dir"`
	RunID         string              `json:"run_id"`
	KnownScripts  int                 `json:"known_scripts"`
	AssetsScanned int                 `json:"assets_scanned"`
	Missing       []missingRefPayload `json:"missing"`
}

type missingRefPayload struct {
	Path string `json:"path"`
	GUID string `json:"guid"`
}

func summaryJSON(summary *scan.Summary) summaryPayload {
	missing := make([]missingRefPayload, 0, len(summary.Missing))
	for _, ref := range summary.Missing {
		missing = append(missing, missingRefPayload{Path: ref.Path, GUID: ref.GUID})
	}
	return summaryPayload{
		Root:          summary.Root,
		AssetsDir:     summary.AssetsDir,
		RunID:         summary.RunID,
		KnownScripts:  summary.Known,
		AssetsScanned: summary.Scanned,
		Missing:       missing,
	}
}
