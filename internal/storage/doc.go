// Package storage manages the local downloads directory.
//
// The storage package creates the downloads directory on construction and
// writes each accepted PDF under a filename derived from the last path
// segment of its source URL, with filesystem-unsafe characters replaced by
// underscores. A later download with the same filename overwrites an
// earlier one.
package storage
