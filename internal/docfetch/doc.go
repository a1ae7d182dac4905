// Package docfetch probes and downloads linked meeting documents.
//
// A probe is a lightweight GET that reads only the response headers to
// decide whether a link serves application/pdf; probe failures are logged
// and treated as "not a PDF". Confirmed PDFs are fetched in full with a
// longer timeout. Every request carries a browser-like User-Agent, and no
// request is retried.
package docfetch
