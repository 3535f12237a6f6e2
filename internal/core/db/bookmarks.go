package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/abhay/bmark/internal/core/clock"
	"github.com/abhay/bmark/internal/core/ident"
)

// ------------------------------
// Bookmark writer
// ------------------------------

// Insert adds a bookmark with its tag associations in one transaction.
//
// url is required; name, description and category are optional and are
// stored as NULL when empty. Tag names that already exist in the store
// are reused, never duplicated; missing ones are created inside the same
// transaction. On any failure the whole transaction rolls back, so no
// partial bookmark, tag or association survives.
//
// Emits a TagCreatedEvent per newly created tag and a
// BookmarkCreatedEvent, after the commit.
func (db *DB) Insert(url, name string, tags []string, description, category string) (Bookmark, error) {
	if url == "" {
		return Bookmark{}, ErrMissingURL
	}
	for _, t := range tags {
		if t == "" {
			return Bookmark{}, ErrEmptyTagName
		}
	}

	tx, err := db.db.Begin()
	if err != nil {
		return Bookmark{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	bookmark, newTags, err := insertInTx(tx, url, name, tags, description, category)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("failed to roll back transaction: %v", rbErr)
		}
		if isConstraintErr(err) {
			return Bookmark{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return Bookmark{}, err
	}
	if err := tx.Commit(); err != nil {
		return Bookmark{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, tag := range newTags {
		db.emit(TagCreatedEvent{Tag: tag})
	}
	db.emit(BookmarkCreatedEvent{Bookmark: bookmark, Tags: tags})

	return bookmark, nil
}

// insertInTx performs the insert steps: resolve tags, insert the bookmark
// row, insert any new tag rows, then the association rows.
func insertInTx(tx *sql.Tx, url, name string, tags []string, description, category string) (Bookmark, []Tag, error) {
	now := clock.Now().String()

	resolved, err := resolveTags(tx, tags)
	if err != nil {
		return Bookmark{}, nil, err
	}

	id, err := ident.New()
	if err != nil {
		return Bookmark{}, nil, err
	}

	_, err = tx.Exec(
		"INSERT INTO bookmark (id, url, name, description, category, added_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, url, nullIfEmpty(name), nullIfEmpty(description), nullIfEmpty(category), now,
	)
	if err != nil {
		return Bookmark{}, nil, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	var newTags []Tag
	for _, t := range resolved {
		if !t.created {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO tag (id, name, added_at) VALUES (?, ?, ?)",
			t.id, t.name, now,
		); err != nil {
			return Bookmark{}, nil, fmt.Errorf("failed to insert tag %q: %w", t.name, err)
		}
		newTags = append(newTags, Tag{ID: t.id, Name: t.name, AddedAt: now})
	}

	for _, t := range resolved {
		if _, err := tx.Exec(
			"INSERT INTO bookmark_tag (bookmark_id, tag_id, created_at) VALUES (?, ?, ?)",
			id, t.id, now,
		); err != nil {
			return Bookmark{}, nil, fmt.Errorf("failed to associate tag %q: %w", t.name, err)
		}
	}

	bookmark := Bookmark{
		ID:          id,
		URL:         url,
		Name:        name,
		Description: description,
		Category:    category,
		AddedAt:     now,
	}
	return bookmark, newTags, nil
}

// nullIfEmpty maps an unset optional field to NULL rather than an empty
// string.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ------------------------------
// Bookmark reader
// ------------------------------

// List returns assembled bookmark views matching opts. The join produces
// one row per (bookmark, tag) pair, so rows are re-aggregated here: one
// view per bookmark, with all of its tag names collected in association
// order. Bookmarks without tags appear exactly once with an empty tag
// list.
func (db *DB) List(opts ListOptions) ([]BookmarkView, error) {
	cols := opts.Columns
	if cols == 0 {
		cols = ColAll
	}

	query := `
		SELECT b.id, b.url, b.name, b.description, b.category, t.name
		FROM bookmark b
		LEFT JOIN bookmark_tag bt ON bt.bookmark_id = b.id
		LEFT JOIN tag t ON t.id = bt.tag_id
	`
	var args []any
	if len(opts.Tags) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(opts.Tags)), ", ")
		for _, name := range opts.Tags {
			args = append(args, name)
		}
		filter := `b.id IN (
			SELECT bt2.bookmark_id
			FROM bookmark_tag bt2
			JOIN tag t2 ON t2.id = bt2.tag_id
			WHERE t2.name IN (` + placeholders + `)`
		if opts.Mode == TagModeAll {
			filter += `
			GROUP BY bt2.bookmark_id
			HAVING COUNT(DISTINCT t2.name) = ?`
			args = append(args, len(distinct(opts.Tags)))
		}
		query += " WHERE " + filter + ")"
	}
	// Bookmark ids are time-ordered; association rowids preserve tag
	// insertion order within a bookmark.
	query += " ORDER BY b.id, bt.rowid"

	rows, err := db.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var out []BookmarkView
	index := make(map[string]int)
	for rows.Next() {
		var id, url string
		var name, description, category, tagName sql.NullString
		if err := rows.Scan(&id, &url, &name, &description, &category, &tagName); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}

		i, ok := index[id]
		if !ok {
			view := BookmarkView{ID: id, Tags: []string{}}
			if cols.Has(ColURL) {
				view.URL = url
			}
			out = append(out, view)
			i = len(out) - 1
			index[id] = i
		}
		v := &out[i]

		// First non-empty value wins; a NULL column is an absent
		// field, not an error.
		if cols.Has(ColName) && v.Name == "" && name.Valid {
			v.Name = name.String
		}
		if cols.Has(ColDescription) && v.Description == "" && description.Valid {
			v.Description = description.String
		}
		if cols.Has(ColCategory) && v.Category == "" && category.Valid {
			v.Category = category.String
		}
		if cols.Has(ColTags) && tagName.Valid {
			v.Tags = append(v.Tags, tagName.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return out, nil
}

// distinct returns the distinct values of names, preserving order.
func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
