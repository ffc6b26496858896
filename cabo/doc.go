// Package cabo parses CABO parameter files, the plain-text format used by
// WOFOST and other Wageningen crop models to ship crop, soil and site
// parameters.
//
// A CABO file is a leading block of '*' comment lines (the header) followed
// by name=value definitions, with '!' starting an inline comment anywhere on
// a line:
//
//	** CROP DATA FILE for use with WOFOST Version 5.4, June 1992
//	**
//	** WHEAT, WINTER 102
//	CRPNAM='Winter wheat 102, Ireland, N-U.K., Netherlands, N-Germany'
//	CROP_NO=99
//	TBASEM   = -10.0    ! lower threshold temp. for emergence [cel]
//	DTSMTB   =   0.00,    0.00,     ! daily increase in temp. sum
//	            30.00,   30.00,     ! as function of av. temp. [cel; cel d]
//	            45.00,   30.00
//	NMINSO   =   0.0110 ; NMINVE   =   0.0030
//
// # Classification
//
// Definitions come in three kinds, decided per line by [KindOf]: a single
// quote anywhere makes a string line, otherwise a comma makes a table line,
// otherwise the line is a scalar line. Lines of the same kind are then
// joined into one search text per kind, which is how a table series spread
// over several physical lines, or several ';'-separated definitions sharing
// one line, are picked up as individual definitions.
//
// # Values
//
// Parsed values map onto four Go types: scalars become int64, or float64
// when the value contains a '.'; quoted values become string with every
// single and double quote removed; table series become []float64 in written
// order. A table series needs at least four values and an even count, since
// it describes x/y pairs of a piecewise-linear function.
//
// # Errors
//
// Parsing is strict and fail-fast. Files without content or without a body
// yield [ErrEmptyFile] and [ErrNoBody]; text no definition pattern accounts
// for yields a [ResidueError]; malformed tables yield [TableLengthError] or
// [TableParityError]; unconvertible values yield a [ValueError]. A name
// defined twice is not an error: the later definition wins and a warning is
// logged through [log/slog].
//
// Parsing allocates no shared state, so the package is safe for concurrent
// use; a [ParameterSet] is read-only once built.
package cabo
