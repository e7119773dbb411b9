// Package shipdash builds a static HTML dashboard of a shipping dataset.
//
// A run goes through four steps:
//
//	load      CSV file -> Dataset
//	aggregate Dataset -> CategoryCount, GroupStats, HistogramBins
//	plot      summaries -> Figure -> PNG file
//	page      file names -> index.html
//
// Data Representation
//
// A Dataset is a column oriented table read once from a CSV file with a
// header row. Column types (int, float, string) are inferred from the
// content. A Dataset is never modified: Strings and Floats return copies
// of a column and fail with ErrSchema if the column is missing, has the
// wrong type or contains empty cells.
//
// Aggregation
//
// CountBy, SummarizeBy and HistogramOf work on any column; WarehouseCounts,
// ModeCounts, RatingByMode and WeightHistogram are the four views shown on
// the dashboard. All results are ordered slices, so two runs on the same
// input give identical results.
//
// Rendering
//
// Charts are gonum plots. A Figure carries the plot together with the
// image size; Save draws it on a fresh raster canvas, so figures do not
// share state. The look of all charts is described by a Theme.
package shipdash
