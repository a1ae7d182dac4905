// Package report accumulates download records and writes the summary CSV.
//
// One record is kept per successfully downloaded document, in the order
// downloads occurred. The CSV carries a header row and the fixed columns
// title,date,pdf_url,file, and is overwritten on every run.
package report
