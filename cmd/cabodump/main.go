// Package main provides the CLI entry point for cabodump, a tool that parses
// CABO parameter files and renders them as text, JSON, YAML, or TOML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/burggraaff/pcse/cabo"
	"github.com/burggraaff/pcse/caboenc"
	"github.com/burggraaff/pcse/log"
	"github.com/burggraaff/pcse/profile"
	"github.com/burggraaff/pcse/version"
)

// watchDebounce coalesces the event bursts editors produce on save into a
// single re-render.
const watchDebounce = 200 * time.Millisecond

var errWatchStdin = errors.New("cannot watch stdin")

func main() {
	encCfg := caboenc.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var (
		headerOnly bool
		watch      bool
	)

	rootCmd := &cobra.Command{
		Use:   "cabodump [flags] <file.cab> [file2.cab ...]",
		Short: "Render CABO parameter files as text, JSON, YAML, or TOML",
		Long: `cabodump parses CABO parameter files and renders them in a chosen output
format. With --watch it keeps running and re-renders whenever an input file
changes.`,
		Version:       version.String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := logCfg.Install(os.Stderr)
			if err != nil {
				return err
			}

			prof := profCfg.NewProfiler()

			err = prof.Start()
			if err != nil {
				return err
			}

			if watch {
				err = runWatch(cmd.Context(), encCfg, args, headerOnly)
			} else {
				err = run(encCfg, args, headerOnly)
			}

			stopErr := prof.Stop()
			if err != nil {
				return err
			}

			return stopErr
		},
	}

	encCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	profCfg.RegisterFlags(rootCmd.Flags())

	rootCmd.Flags().BoolVar(&headerOnly, "header-only", false,
		"print only the comment header block")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"keep running and re-render on input file changes")

	for _, register := range []func(*cobra.Command) error{
		encCfg.RegisterCompletions,
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *caboenc.Config, paths []string, headerOnly bool) error {
	out, err := renderAll(cfg, paths, headerOnly)
	if err != nil {
		return err
	}

	return writeOutput(cfg.Output, out)
}

// renderAll parses and renders every input in order. YAML documents are
// separated with "---" so the concatenation stays a valid multi-document
// stream.
func renderAll(cfg *caboenc.Config, paths []string, headerOnly bool) ([]byte, error) {
	format, err := caboenc.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var out []byte

	for i, path := range paths {
		var data []byte

		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("%w: stdin: %w", caboenc.ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", caboenc.ErrReadInput, err)
			}
		}

		ps, err := cabo.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		if i > 0 && format == caboenc.FormatYAML {
			out = append(out, []byte("---\n")...)
		}

		rendered, err := render(ps, format, headerOnly)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}

		out = append(out, rendered...)
	}

	return out, nil
}

// render encodes a single parameter set. With headerOnly the comment header
// is printed as plain lines regardless of format.
func render(ps *cabo.ParameterSet, format caboenc.Format, headerOnly bool) ([]byte, error) {
	if headerOnly {
		var sb strings.Builder

		for _, line := range ps.Header() {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}

		return []byte(sb.String()), nil
	}

	return caboenc.Encode(ps, format)
}

func writeOutput(output string, data []byte) error {
	if output == "" || output == "-" {
		_, err := os.Stdout.Write(data)
		if err != nil {
			return fmt.Errorf("%w: %w", caboenc.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(output, data, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", caboenc.ErrWriteOutput, err)
	}

	return nil
}

// runWatch renders once, then re-renders whenever an input file changes. A
// failed re-render is logged and watching continues; only the initial render
// is fatal.
func runWatch(ctx context.Context, cfg *caboenc.Config, paths []string, headerOnly bool) error {
	err := run(cfg, paths, headerOnly)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // nothing to do with a close error here

	// Watch parent directories rather than the files themselves so
	// atomic saves (write temp file, rename over target) stay visible.
	watched := make(map[string]bool, len(paths))

	for _, path := range paths {
		if path == "-" {
			return errWatchStdin
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}

		watched[abs] = true

		err = watcher.Add(filepath.Dir(abs))
		if err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	slog.Info("watching for changes", slog.Int("files", len(paths)))

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(watchDebounce)
			timerC = timer.C

			return
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}

		timer.Reset(watchDebounce)
		timerC = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return nil

		case <-timerC:
			timerC = nil

			err := run(cfg, paths, headerOnly)
			if err != nil {
				slog.Error("re-render failed", slog.Any("error", err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watcher error", slog.Any("error", err))

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			abs, absErr := filepath.Abs(event.Name)
			if absErr != nil || !watched[abs] {
				continue
			}

			resetTimer()
		}
	}
}
