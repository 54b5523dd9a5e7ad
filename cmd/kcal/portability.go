package kcal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/service"
	"github.com/saadjs/kcal-tui/internal/store"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export goals and records (json, csv or text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			snap := m.Snapshot()
			var buf bytes.Buffer
			switch strings.ToLower(strings.TrimSpace(exportFormat)) {
			case "json":
				b, err := json.MarshalIndent(service.ExportDataSnapshot(snap), "", "  ")
				if err != nil {
					return fmt.Errorf("marshal export json: %w", err)
				}
				buf.Write(b)
			case "csv":
				if err := service.WriteCSV(&buf, snap); err != nil {
					return err
				}
			case "text":
				if err := store.EncodeText(&buf, snap); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported --format %q (use json, csv or text)", exportFormat)
			}
			if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d day(s) to %s\n", len(snap.Records), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import goals and records (json, csv or text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		incoming, hasGoals, err := decodeImport(raw, importFormat)
		if err != nil {
			return err
		}
		return withStore(cmd, func(_ *config.Config, m *store.Manager) error {
			report, err := service.ImportSnapshot(m, incoming, hasGoals, service.ImportOptions{
				Mode:   service.ImportMode(strings.ToLower(strings.TrimSpace(importMode))),
				DryRun: importDryRun,
			})
			if err != nil {
				return err
			}
			if !importDryRun {
				if err := m.SaveAll(cmd.Context()); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import report: inserted=%d updated=%d skipped=%d conflicts=%d\n", report.Inserted, report.Updated, report.Skipped, report.Conflicts)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			if importDryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing saved")
			}
			return nil
		})
	},
}

func decodeImport(raw []byte, format string) (store.Snapshot, bool, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		var payload service.ExportData
		if err := json.Unmarshal(raw, &payload); err != nil {
			return store.Snapshot{}, false, fmt.Errorf("parse import json: %w", err)
		}
		snap, err := service.SnapshotFromExport(&payload)
		return snap, payload.Goals != nil, err
	case "csv":
		snap, err := service.ReadCSV(bytes.NewReader(raw))
		return snap, false, err
	case "text":
		snap, err := store.DecodeText(bytes.NewReader(raw))
		return snap, bytes.Contains(raw, []byte("DAILY_GOALS:")), err
	default:
		return store.Snapshot{}, false, fmt.Errorf("unsupported --format %q (use json, csv or text)", format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json, csv or text")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importFormat, "format", "json", "Import format: json, csv or text")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Conflict mode: fail, skip, merge (append foods to existing days) or replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate and report without saving")
}
