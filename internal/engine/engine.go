// Package engine ties discovery, safety analysis, and removal into the two
// entry points the presentation layer consumes: List and Uninstall.
//
// The engine holds no cache and no lock: every List reads OS truth fresh,
// and the caller is responsible for not running a second List or Uninstall
// while one is in flight.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dotsweep/dotsweep/internal/bundle"
	"github.com/dotsweep/dotsweep/internal/collectors"
	"github.com/dotsweep/dotsweep/internal/logging"
	"github.com/dotsweep/dotsweep/internal/safety"
	"github.com/dotsweep/dotsweep/internal/uninstall"
)

// PinDetector finds IDE-pinned bundles in a snapshot.
type PinDetector func([]bundle.Bundle) []safety.Pin

// Options configures a new Engine. Zero-value fields fall back to the
// platform defaults; tests inject fakes.
type Options struct {
	Collector   collectors.Collector
	Executor    uninstall.Executor
	PinDetector PinDetector

	// PreserveIDEPinned keeps bundles required by an installed IDE
	// non-removable. On by default in config.
	PreserveIDEPinned bool
}

// Engine is the installed-bundle discovery and safe-uninstall engine.
type Engine struct {
	collector  collectors.Collector
	executor   uninstall.Executor
	detectPins PinDetector
	preserve   bool
	log        *slog.Logger
}

// New builds an engine for the current platform. Fails with the collector's
// or executor's ErrPlatformUnsupported on operating systems without support.
func New(opts Options) (*Engine, error) {
	e := &Engine{
		collector:  opts.Collector,
		executor:   opts.Executor,
		detectPins: opts.PinDetector,
		preserve:   opts.PreserveIDEPinned,
		log:        logging.L("engine"),
	}

	if e.collector == nil {
		c, err := collectors.New()
		if err != nil {
			return nil, err
		}
		e.collector = c
	}
	if e.executor == nil {
		x, err := uninstall.New()
		if err != nil {
			return nil, err
		}
		e.executor = x
	}
	if e.detectPins == nil {
		e.detectPins = safety.DetectPins
	}
	return e, nil
}

// List enumerates installed bundles, annotates each with its removability,
// and returns them ordered by kind then version descending. Two calls with
// no intervening OS mutation return identical results.
func (e *Engine) List() ([]bundle.Entry, error) {
	found, err := e.collector.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("enumerate bundles: %w", err)
	}

	unique, dropped := bundle.Dedupe(found)
	for _, d := range dropped {
		// Duplicate (kind, version, arch) triples mean a collector bug.
		e.log.Warn("dropping duplicate bundle", logging.KeyBundle, d.Key())
	}
	for _, b := range unique {
		if b.Version == nil {
			e.log.Warn("bundle version did not parse; treating as independent",
				logging.KeyBundle, b.Key(), "rawVersion", b.RawVersion)
		}
	}

	var pins []safety.Pin
	if e.preserve {
		pins = e.detectPins(unique)
	}

	entries := safety.Annotate(unique, pins)
	bundle.SortEntries(entries)

	e.log.Debug("enumeration complete",
		"bundles", len(entries), "duplicates", len(dropped), "pins", len(pins))
	return entries, nil
}

// Uninstall removes one bundle. It never panics or propagates an error value
// across the boundary: the second return is a human-readable failure
// description, empty on success. The caller must re-run List afterward.
func (e *Engine) Uninstall(entry bundle.Entry) (bool, string) {
	log := e.log.With(logging.KeyBundle, entry.Key())

	if err := e.executor.Remove(entry); err != nil {
		log.Error("uninstall failed", logging.KeyError, err)
		return false, err.Error()
	}

	log.Info("bundle uninstalled")
	return true, ""
}
