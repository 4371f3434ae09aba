// Package notas extracts the trades of Brazilian brokerage notes ("notas de
// corretagem") and groups them per ticker.
//
// The extraction works on the plain text of each page:
//   - A Layout identifies trade rows by a marker (1-BOVESPA for the default
//     layout), strips the market prefix and the trailing qualifiers to get the
//     ticker, and picks the quantity and the average price by their position
//     from the end of the row.
//   - A Processor reads documents through a PageReader, one at a time, and
//     never fails a batch because of a single document: problems are reported
//     as Diagnostics alongside the results.
//   - An Accumulator groups the records per ticker, in first-seen order,
//     concatenating quantities and price formulas with " + " so that a human
//     (or a spreadsheet) can evaluate them.
//
// This package serves as the foundational logic for the `notas` command-line
// tool, the renderer package turns its results into reports.
package notas
