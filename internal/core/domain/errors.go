package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingName is returned when a dependency record has no name.
	ErrMissingName = zerr.New("dependency record is missing a name")

	// ErrMissingVersion is returned when a dependency record has no version.
	ErrMissingVersion = zerr.New("dependency record is missing a version")

	// ErrMissingLicense is returned when a dependency record has no license.
	ErrMissingLicense = zerr.New("dependency record is missing a license")

	// ErrInvalidRecord is returned when a records file contains a record that fails validation.
	ErrInvalidRecord = zerr.New("invalid dependency record")

	// ErrRecordsNotFound is returned when no records file can be found.
	ErrRecordsNotFound = zerr.New("could not find records file")

	// ErrRecordsReadFailed is returned when the records file cannot be read.
	ErrRecordsReadFailed = zerr.New("failed to read records file")

	// ErrRecordsParseFailed is returned when the records file cannot be parsed.
	ErrRecordsParseFailed = zerr.New("failed to parse records file")

	// ErrTemplateReadFailed is returned when a notice template file cannot be read.
	ErrTemplateReadFailed = zerr.New("failed to read template file")

	// ErrTemplateParseFailed is returned when a notice template cannot be parsed.
	ErrTemplateParseFailed = zerr.New("failed to parse template")

	// ErrTemplateRenderFailed is returned when rendering a notice template fails.
	ErrTemplateRenderFailed = zerr.New("failed to render template")

	// ErrNoticeReadFailed is returned when an existing notices file cannot be read.
	ErrNoticeReadFailed = zerr.New("failed to read notices file")

	// ErrNoticeWriteFailed is returned when the notices file cannot be written.
	ErrNoticeWriteFailed = zerr.New("failed to write notices file")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
