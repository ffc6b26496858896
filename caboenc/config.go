package caboenc

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/burggraaff/pcse/cabo"
)

// Flags holds CLI flag names for encoder configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Format string
	Output string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for encoder configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Encode] to render a parameter set in
// the configured format.
type Config struct {
	Format string
	Output string
	Flags  Flags
}

// NewConfig returns a new [Config] with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Format: "format",
		Output: "output",
	}

	return f.NewConfig()
}

// RegisterFlags adds encoder flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "text",
		fmt.Sprintf("output format, one of: %s", GetAllFormatStrings()))
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
}

// RegisterCompletions registers shell completions for encoder flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// Encode renders ps in the format stored in c. It delegates to [Encode]
// after parsing the format string.
func (c *Config) Encode(ps *cabo.ParameterSet) ([]byte, error) {
	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	return Encode(ps, format)
}
