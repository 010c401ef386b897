// Package unit defines the duration units understood by humantime.
//
// A Table is an ordered, immutable list of units sorted from the largest
// multiplier to the smallest. The formatter walks it greedily, so the order
// is load-bearing and enforced by NewTable.
//
// # Aliases
//
// Some units have multi-letter aliases ("ms" for milliseconds, "mo" for
// months). Table.Normalize rewrites every alias to its single-letter code in
// one left-to-right pass before tokenization. NewTable rejects tables where
// one alias is a substring of another, so the result never depends on the
// order the aliases are listed in.
//
// # Derived Views
//
// Tables are never modified after construction. Restricting the output to a
// subset of units (for example capping at years) builds a new Table with
// Without or YearsMax; the shared Default table is unaffected.
//
// # Code Generation
//
// The built-in units live in units.yaml. table_gen.go is produced from it by
// humantime-unitgen:
//
//	go generate ./pkg/unit
package unit

//go:generate go run ../../cmd/humantime-unitgen -input units.yaml -output table_gen.go
