package db

import "log"

// ------------------------------
// Event System
// ------------------------------
//
// The DB emits typed events after a bookmark insert commits. The store
// is append-only, so creation events are the only kind. Register
// listeners to react to new rows.
//
// Example usage:
//
//	db.RegisterEventListener(db.OnBookmarkCreatedEvent, func(event db.Event) error {
//	    ev := event.(db.BookmarkCreatedEvent)
//	    log.Printf("New bookmark: %s - %s", ev.Bookmark.ID, ev.Bookmark.URL)
//	    return nil
//	})
//
// Event is the common interface for all database events.
type Event interface {
	Kind() EventKind
}

// EventKind represents all the kinds of events that can be emitted by the DB.
type EventKind int

const (
	// OnBookmarkCreatedEvent is emitted when a bookmark is created.
	OnBookmarkCreatedEvent EventKind = iota
	// OnTagCreatedEvent is emitted when an insert creates a tag that
	// did not exist before.
	OnTagCreatedEvent
)

func (k EventKind) String() string {
	switch k {
	case OnBookmarkCreatedEvent:
		return "bookmark_created"
	case OnTagCreatedEvent:
		return "tag_created"
	default:
		return "unknown"
	}
}

// BookmarkCreatedEvent is emitted after a new bookmark is successfully
// committed, with the tag names it was associated with.
type BookmarkCreatedEvent struct {
	Bookmark Bookmark
	Tags     []string
}

func (e BookmarkCreatedEvent) Kind() EventKind { return OnBookmarkCreatedEvent }

// TagCreatedEvent is emitted once per tag newly created as a side effect
// of a bookmark insert. Reused tags do not emit it.
type TagCreatedEvent struct {
	Tag Tag
}

func (e TagCreatedEvent) Kind() EventKind { return OnTagCreatedEvent }

// EventListener is a callback that handles events of a specific kind.
type EventListener func(event Event) error

// RegisterEventListener adds a listener for a specific event kind.
// Listeners are called synchronously in registration order after the
// transaction commits.
func (db *DB) RegisterEventListener(eventKind EventKind, listener EventListener) {
	if db.eventListeners == nil {
		db.eventListeners = make(map[EventKind][]EventListener)
	}
	db.eventListeners[eventKind] = append(db.eventListeners[eventKind], listener)
}

// emit dispatches an event to all registered listeners for that event kind.
func (db *DB) emit(event Event) {
	listeners := db.eventListeners[event.Kind()]
	for _, listener := range listeners {
		if err := listener(event); err != nil {
			log.Printf("Event listener error for %s: %v", event.Kind(), err)
		}
	}
}
