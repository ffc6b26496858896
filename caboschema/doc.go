// Package caboschema generates JSON Schema (Draft 7) documents describing
// parsed CABO parameter sets.
//
// A generated schema has one property per parameter, typed from the value
// the parser produced: integer for int64 scalars, number for float64
// scalars, string for quoted values, and array-of-number with a minimum of
// four items for table series. Every property carries the observed value as
// its default. The x/y parity rule of table series has no Draft 7
// expression, so the schema only enforces the minimum length.
//
// Generating from several sets yields their union, which is how a schema
// for a whole crop library is built from its individual variety files:
//
//	gen := caboschema.NewGenerator(caboschema.WithTitle("WOFOST crop parameters"))
//	schema := gen.Generate(wheat, barley, maize)
//
// A parameter defined with different kinds across sets widens: integer with
// number gives number, anything else drops the type constraint entirely,
// keeping the schema permissive rather than wrong. The first set to define
// a parameter contributes its default. Properties keep definition order in
// the PropertyOrder field; schemas stay valid for consumers that ignore it.
//
// By default additional properties are allowed. [WithStrict] closes the
// schema so that only observed parameters validate.
//
// # CLI Integration
//
// [Config] bridges CLI flags to the generator, following the RegisterFlags /
// RegisterCompletions / NewGenerator pattern. The [Flags] field lets callers
// rename flags when embedding several configs in one command.
package caboschema
