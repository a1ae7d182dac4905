// Package meeting provides types for municipal meetings and their documents.
//
// The meeting package defines the document labels published on the county
// meetings listing (Agenda, Package, Action Report, Minutes, COAD Report),
// the per-row Meeting extracted from the listing, and the Record written to
// the summary CSV for each downloaded document.
package meeting
