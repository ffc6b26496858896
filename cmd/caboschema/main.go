// Package main provides the CLI entry point for caboschema, a tool that
// generates JSON Schema (Draft 7) from CABO parameter files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/burggraaff/pcse/cabo"
	"github.com/burggraaff/pcse/caboschema"
	"github.com/burggraaff/pcse/log"
	"github.com/burggraaff/pcse/version"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := caboschema.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "caboschema [flags] <file.cab> [file2.cab ...]",
		Short: "Generate JSON Schema from CABO parameter files",
		Long: `caboschema generates JSON Schema (Draft 7) from CABO parameter files. Each
parameter becomes a property typed after its parsed value, with the value
itself recorded as the property default. Multiple input files merge into a
single schema describing their union.`,
		Version:       version.String(),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := logCfg.Install(os.Stderr)
			if err != nil {
				return err
			}

			return run(cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())

	for _, register := range []func(*cobra.Command) error{
		cfg.RegisterCompletions,
		logCfg.RegisterCompletions,
	} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	return rootCmd
}

func run(cfg *caboschema.Config, args []string) error {
	var sets []*cabo.ParameterSet

	for _, arg := range args {
		var (
			data []byte
			err  error
		)

		name := arg

		if arg == "-" {
			name = "stdin"

			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("%w: stdin: %w", caboschema.ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", caboschema.ErrReadInput, err)
			}
		}

		ps, err := cabo.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}

		sets = append(sets, ps)
	}

	schema := cfg.NewGenerator().Generate(sets...)

	indent := "  "
	if cfg.Indent > 0 {
		indent = ""
		for range cfg.Indent {
			indent += " "
		}
	}

	out, err := json.MarshalIndent(schema, "", indent)
	if err != nil {
		return fmt.Errorf("%w: %w", caboschema.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = os.Stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", caboschema.ErrWriteOutput, err)
		}
	} else {
		err := os.WriteFile(cfg.Output, out, 0o644)
		if err != nil {
			return fmt.Errorf("%w: %w", caboschema.ErrWriteOutput, err)
		}
	}

	return nil
}
