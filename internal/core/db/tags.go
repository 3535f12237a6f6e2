package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/abhay/bmark/internal/core/ident"
)

// resolvedTag pairs a requested tag name with its identifier. created is
// true when the identifier was freshly assigned and the row still needs
// to be inserted.
type resolvedTag struct {
	id      string
	name    string
	created bool
}

// resolveTags partitions the requested tag names into already-existing
// tags (looked up by exact name) and tags to be created, returning one
// entry per distinct name in first-occurrence order. It must run inside
// the same transaction as the inserts that follow, so the lookup and the
// creation of missing tags are a single atomic step.
func resolveTags(tx *sql.Tx, names []string) ([]resolvedTag, error) {
	// The same name requested twice must resolve to the same identifier.
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(unique)), ", ")
	args := make([]any, len(unique))
	for i, name := range unique {
		args[i] = name
	}

	rows, err := tx.Query("SELECT id, name FROM tag WHERE name IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	existing := make(map[string]string, len(unique))
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		existing[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}

	resolved := make([]resolvedTag, 0, len(unique))
	for _, name := range unique {
		if id, ok := existing[name]; ok {
			resolved = append(resolved, resolvedTag{id: id, name: name})
			continue
		}
		id, err := ident.New()
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedTag{id: id, name: name, created: true})
	}
	return resolved, nil
}
