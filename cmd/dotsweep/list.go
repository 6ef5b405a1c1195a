package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotsweep/dotsweep/internal/bundle"
	"github.com/dotsweep/dotsweep/internal/collectors"
	"github.com/dotsweep/dotsweep/internal/ui"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed .NET bundles and their removability",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "output format: table, json, yaml")
}

// entryRow is the serialized shape of one bundle for json/yaml output.
type entryRow struct {
	Kind         string `json:"kind" yaml:"kind"`
	Version      string `json:"version" yaml:"version"`
	Architecture string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	DisplayName  string `json:"displayName" yaml:"displayName"`
	CanUninstall bool   `json:"canUninstall" yaml:"canUninstall"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
	UninstallCmd string `json:"uninstallCommand,omitempty" yaml:"uninstallCommand,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		if errors.Is(err, collectors.ErrPlatformUnsupported) {
			return fmt.Errorf("this platform has no .NET bundle collector (Windows and macOS only)")
		}
		return err
	}

	entries, err := eng.List()
	if err != nil {
		return err
	}

	switch listOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows(entries))
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(rows(entries))
	case "table":
		printTable(entries)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", listOutput)
	}
}

func rows(entries []bundle.Entry) []entryRow {
	out := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryRow{
			Kind:         string(e.Kind),
			Version:      e.RawVersion,
			Architecture: string(e.Arch),
			DisplayName:  e.DisplayName,
			CanUninstall: e.CanUninstall,
			Reason:       e.Reason,
			UninstallCmd: e.UninstallCommand,
		})
	}
	return out
}

func printTable(entries []bundle.Entry) {
	if len(entries) == 0 {
		fmt.Println("No .NET bundles found.")
		return
	}

	fmt.Println(ui.Heading("Installed .NET bundles"))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tVERSION\tARCH\tSTATUS")
	for _, e := range entries {
		status := ui.Removable()
		if !e.CanUninstall {
			status = ui.Blocked(e.Reason)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Kind.Label(), e.RawVersion, e.Arch, status)
	}
	w.Flush()
}
