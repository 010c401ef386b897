// Package humantime converts between human-typed durations and seconds.
//
// Parsing accepts strings such as "10m, 1h, 12y" or "1h3d5w": every run of
// decimal digits followed by a single unit letter contributes
// magnitude*multiplier seconds to the total. Multi-letter aliases ("ms",
// "mo", ...) are rewritten to their canonical letters first. Text that
// never forms a digits+letter pair is ignored.
//
//	secs, err := humantime.ToSeconds("1h3d5w")         // 3286800
//	n, err := humantime.ToIntegerSeconds("2h")         // 7200
//
// Formatting breaks a number of seconds down greedily, largest unit first,
// and either returns the non-zero counts or renders them as English text:
//
//	text, err := humantime.FromSeconds(3723, false)   // "1 Hour, 2 Minutes, and 3 Seconds"
//	b, err := humantime.Decompose(3723, false)        // h=1 m=2 s=3
//
// ToDuration, FromDuration and DecomposeDuration work on time.Duration in
// integer nanoseconds.
//
// # Unknown Units
//
// A matched pair whose letter is not a unit ("10x") is reported as an
// *UnknownUnitError under PolicyStrict, the default. PolicyLenient skips
// such pairs instead.
//
// # Months and Years
//
// Months, years, decades and centuries are fixed-length approximations
// (30 and 365 days), not calendar arithmetic.
//
// # Concurrency
//
// A Converter never modifies its unit table. Formatting with years as the
// largest unit uses a derived table, so concurrent callers never observe
// each other's options.
package humantime
