package domain

const (
	// RecordsFileName is the default name of the records file.
	RecordsFileName = "licnotice.yaml"

	// DefaultNoticePath is the default path of the generated notices file.
	DefaultNoticePath = "THIRD-PARTY.txt"

	// DefaultSeparator is inserted between dependency blocks in the notices file.
	DefaultSeparator = "\n\n---\n\n"

	// EmptyNotice is the notice body when there are no dependencies to report.
	EmptyNotice = "No third parties dependencies."

	// NoticeFilePerm is the permission for generated notices files.
	NoticeFilePerm = 0o644
)
