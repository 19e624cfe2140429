package ports

import (
	"context"
	"iter"
)

// Op describes the kind of file system change observed.
type Op int

const (
	// OpWrite indicates file content was modified.
	OpWrite Op = iota
	// OpCreate indicates a file was created.
	OpCreate
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	// Path is the affected file path.
	Path string

	// Operation is the kind of change.
	Operation Op
}

// Watcher is the abstraction for file system watching.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given directory. Events are delivered until
	// the context is cancelled or Stop is called.
	Start(ctx context.Context, dir string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator over observed file system events.
	Events() iter.Seq[WatchEvent]
}
