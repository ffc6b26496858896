// Package caboenc renders parsed CABO parameter sets in interchange
// formats, so crop and soil parameters can feed pipelines that speak JSON,
// YAML or TOML instead of the CABO format itself.
//
// All structured formats share one wire shape, [Document]: the retained
// header block plus a parameters mapping. The text format is the
// human-readable rendering of [cabo.ParameterSet.String] unchanged.
//
// Parameter values keep the Go types the parser assigned, so integers stay
// integers in formats that distinguish them:
//
//	doc, _ := caboenc.Encode(ps, caboenc.FormatJSON)
//
// Encoders write maps in their library's native key order, which is sorted
// for every format here, so output is deterministic and diffable.
//
// # Errors
//
// The package defines three sentinel errors for use with [errors.Is]:
// [ErrUnknownFormat] for format names [ParseFormat] does not recognize, and
// [ErrReadInput] and [ErrWriteOutput] for I/O failures in the CLIs built on
// this package.
//
// # CLI Integration
//
// [Config] bridges CLI flags to the encoders, following the RegisterFlags /
// RegisterCompletions pattern. The [Flags] type within [Config] allows
// callers to customize flag names while keeping sensible defaults.
// [Config.Encode] parses the configured format name and encodes in one
// call:
//
//	cfg := caboenc.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	out, err := cfg.Encode(ps)
package caboenc
