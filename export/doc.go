// Package export renders analysis results to Excel workbooks.
package export
