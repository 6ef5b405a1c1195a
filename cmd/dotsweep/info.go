package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"github.com/dotsweep/dotsweep/internal/collectors"
	"github.com/dotsweep/dotsweep/internal/privilege"
	"github.com/dotsweep/dotsweep/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host and platform-support information",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.Heading("Host"))

	if hi, err := host.Info(); err == nil {
		fmt.Printf("  OS:        %s %s (%s)\n", hi.Platform, hi.PlatformVersion, hi.KernelArch)
		fmt.Printf("  Hostname:  %s\n", hi.Hostname)
	} else {
		fmt.Printf("  OS:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	fmt.Printf("  Elevated:  %v\n", privilege.IsRunningAsRoot())

	fmt.Println(ui.Heading("Bundle discovery"))
	_, err := collectors.New()
	switch {
	case err == nil:
		fmt.Println("  Supported: yes")
	case errors.Is(err, collectors.ErrPlatformUnsupported):
		fmt.Println("  Supported: no (Windows and macOS only)")
	default:
		return err
	}
	return nil
}
