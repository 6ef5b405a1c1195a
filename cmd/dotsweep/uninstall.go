package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotsweep/dotsweep/internal/bundle"
	"github.com/dotsweep/dotsweep/internal/privilege"
	"github.com/dotsweep/dotsweep/internal/ui"
)

var uninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <kind> <version> [arch]",
	Short: "Uninstall one .NET bundle",
	Long: `Uninstall one installed bundle identified by kind, version, and optionally
architecture. Kinds: sdk, runtime, aspnet-runtime, desktop-runtime,
hosting-bundle. The architecture is only needed when the same version is
installed for more than one.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "skip the confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	kind, version := bundle.Kind(args[0]), args[1]
	arch := bundle.ArchUnknown
	if len(args) == 3 {
		arch = bundle.Arch(args[2])
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	entries, err := eng.List()
	if err != nil {
		return err
	}

	entry, err := selectEntry(entries, kind, version, arch)
	if err != nil {
		return err
	}

	if !entry.CanUninstall {
		return fmt.Errorf("cannot uninstall %s: %s", entry.Label(), entry.Reason)
	}

	if !privilege.IsRunningAsRoot() {
		fmt.Fprintln(os.Stderr, ui.Muted("warning: not running elevated; the uninstall will likely fail"))
	}

	if !uninstallYes && !confirm(entry) {
		fmt.Println("Aborted.")
		return nil
	}

	ok, msg := eng.Uninstall(entry)
	if !ok {
		return fmt.Errorf("%s", msg)
	}
	fmt.Printf("%s %s uninstalled\n", ui.Removable(), entry.Label())
	return nil
}

func selectEntry(entries []bundle.Entry, kind bundle.Kind, version string, arch bundle.Arch) (bundle.Entry, error) {
	var matches []bundle.Entry
	for _, e := range entries {
		if e.Kind != kind || e.RawVersion != version {
			continue
		}
		if arch != bundle.ArchUnknown && e.Arch != arch {
			continue
		}
		matches = append(matches, e)
	}

	switch len(matches) {
	case 0:
		return bundle.Entry{}, fmt.Errorf("no installed %s %s found", kind.Label(), version)
	case 1:
		return matches[0], nil
	default:
		archs := make([]string, 0, len(matches))
		for _, m := range matches {
			archs = append(archs, string(m.Arch))
		}
		return bundle.Entry{}, fmt.Errorf("%s %s is installed for %s; specify the architecture",
			kind.Label(), version, strings.Join(archs, ", "))
	}
}

func confirm(entry bundle.Entry) bool {
	fmt.Printf("Uninstall %s? [y/N] ", entry.Label())
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
