package core

import "time"

// AppName is used for XDG directory names and user-facing messages.
const AppName = "bmark"

// DBFileName is the default name of the SQLite database file.
const DBFileName = "bmark.db"

// Timeout defaults for page-title fetching
const (
	DefaultFetchTimeout = 10 * time.Second
)

// Resource limits
const (
	MaxPageSize = 5 * 1024 * 1024 // 5MB
)

// HTTP client configuration
const (
	UserAgent = "Mozilla/5.0 (compatible; bmark/1.0)"
)
