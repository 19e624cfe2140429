package ports

import "github.com/mjeanroy/licnotice/internal/core/domain"

// RecordsLoader defines the interface for loading dependency records.
//
//go:generate mockgen -source=records_loader.go -destination=mocks/mock_records_loader.go -package=mocks
type RecordsLoader interface {
	// Load reads dependency records from the given records file path.
	// An empty path triggers discovery from the current working directory.
	// Every returned record has passed validation.
	Load(path string) ([]domain.Dependency, error)

	// Discover walks up from cwd and returns the path of the nearest
	// records file.
	Discover(cwd string) (string, error)
}
