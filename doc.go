// Package costcalc provides the types and functions behind the campaign cost
// calculator. It is a small, local-first library that turns monthly costs into
// prorated, margin-adjusted amounts and keeps a running total of them.
//
// The core functionalities include:
//   - Cost Calculation: a monthly cost is prorated on a 30 days basis,
//     multiplied by a number of days and inflated by a margin percentage.
//     Person and service costs derive their monthly cost from a unit cost and
//     a unit count, direct costs supply it as is.
//   - Ledger: an insertion-ordered list of cost entries, with add, remove by
//     position and clear operations. The total is always recomputed from the
//     entries.
//   - Formatting: amounts are displayed with South-Asian digit grouping, a
//     first group of three digits and then groups of two (12,34,567).
//
// All arithmetic is exact decimal arithmetic. This package serves as the
// foundational logic for the `ccc` command-line tool.
package costcalc
