// Package crawler walks the paginated meetings listing and coordinates
// extraction, probing, and downloads.
//
// The walk is strictly sequential: pages in increasing index order, rows in
// document order, document labels in their fixed probe order. A page-load
// timeout or a page with zero rows ends the walk; every other network
// failure degrades to skipping the one link and continuing. The loop is
// additionally bounded by a maximum page count so a site that never returns
// an empty page cannot keep the crawl alive forever.
package crawler
