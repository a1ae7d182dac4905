// Package scraper parses the rendered meetings listing page into meetings.
//
// The scraper package extracts one Meeting per listing row (tr.odd/tr.even),
// pulling the title, calendar date, and the anchors for the five document
// categories via the listing's CSS classes. Relative document hrefs are
// resolved against the site origin; absolute hrefs pass through unchanged.
package scraper
