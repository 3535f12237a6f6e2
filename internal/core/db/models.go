package db

import "fmt"

type Bookmark struct {
	ID  string
	URL string
	// Name, Description and Category are optional; empty means the
	// column is NULL.
	Name        string
	Description string
	Category    string
	// AddedAt is stored in the DB as "YYYY-MM-DD HH:MM:SS" UTC text.
	AddedAt string
}

type Tag struct {
	ID      string
	Name    string
	AddedAt string
}

// BookmarkView is one assembled record returned by List: a bookmark with
// all of its tag names aggregated, restricted to the selected columns.
type BookmarkView struct {
	ID          string
	URL         string
	Name        string
	Description string
	Category    string
	Tags        []string
}

// ColumnSet selects which bookmark fields List fills in. Tags are always
// aggregated as a whole, never individually.
type ColumnSet uint8

const (
	ColURL ColumnSet = 1 << iota
	ColName
	ColDescription
	ColCategory
	ColTags

	ColAll = ColURL | ColName | ColDescription | ColCategory | ColTags
)

// Has reports whether col is selected.
func (c ColumnSet) Has(col ColumnSet) bool {
	return c&col != 0
}

// ParseColumns maps the CLI --cols vocabulary to a ColumnSet. "desc" and
// "tags" include the URL so the listed values stay attributable.
func ParseColumns(s string) (ColumnSet, error) {
	switch s {
	case "all":
		return ColAll, nil
	case "url":
		return ColURL, nil
	case "desc":
		return ColURL | ColDescription, nil
	case "tags":
		return ColURL | ColTags, nil
	default:
		return 0, fmt.Errorf("invalid column selection %q (want all, url, desc or tags)", s)
	}
}

// TagMode controls how a tag filter matches: any of the requested tags,
// or all of them.
type TagMode int

const (
	TagModeAny TagMode = iota
	TagModeAll
)

func (m TagMode) String() string {
	switch m {
	case TagModeAny:
		return "any"
	case TagModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseTagMode maps the CLI --tag-mode vocabulary to a TagMode.
func ParseTagMode(s string) (TagMode, error) {
	switch s {
	case "any":
		return TagModeAny, nil
	case "all":
		return TagModeAll, nil
	default:
		return 0, fmt.Errorf("invalid tag mode %q (want any or all)", s)
	}
}

// ListOptions selects which bookmarks List returns and which columns it
// fills in. The zero value lists every bookmark with all columns.
type ListOptions struct {
	// Tags filters to bookmarks associated with the named tags. Empty
	// means all bookmarks.
	Tags []string
	// Mode is only consulted when Tags is non-empty.
	Mode TagMode
	// Columns restricts the projected fields. Zero means ColAll.
	Columns ColumnSet
}
