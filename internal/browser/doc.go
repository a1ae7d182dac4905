// Package browser provides the headless Chrome session used to render the
// meetings listing.
//
// The listing is a JavaScript-driven Drupal view, so pages are loaded
// through chromedp and handed to the scraper as rendered HTML. The session
// owns one browser process for the whole crawl; it is started once and
// closed once at shutdown.
package browser
