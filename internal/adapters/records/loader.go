// Package records provides the loader for dependency records files.
package records

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/mjeanroy/licnotice/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecordsLoader = (*Loader)(nil)

// Loader implements ports.RecordsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads dependency records from the given path.
// An empty path triggers discovery from the current working directory.
func (l *Loader) Load(path string) ([]domain.Dependency, error) {
	if path == "" {
		discovered, err := l.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordsReadFailed.Error()), "path", path)
	}

	var file RecordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordsParseFailed.Error()), "path", path)
	}

	if len(file.Dependencies) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s contains no dependencies", path))
	}

	deps := make([]domain.Dependency, 0, len(file.Dependencies))
	for i, dto := range file.Dependencies {
		dep := toDomain(dto)
		if err := dep.Validate(); err != nil {
			err = zerr.With(err, "index", i)
			err = zerr.With(err, "path", path)
			return nil, err
		}
		deps = append(deps, dep)
	}

	return deps, nil
}

// Discover walks up from cwd and returns the path of the nearest records file.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrRecordsNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.RecordsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	notFound := zerr.Wrap(domain.ErrRecordsNotFound, "no "+domain.RecordsFileName+" in any parent directory")
	return "", zerr.With(notFound, "cwd", cwd)
}

// toDomain maps a records-file DTO to the domain type.
func toDomain(dto DependencyDTO) domain.Dependency {
	dep := domain.Dependency{
		Name:        dto.Name,
		Version:     dto.Version,
		License:     dto.License,
		Private:     dto.Private,
		Description: dto.Description,
		Homepage:    dto.Homepage,
	}

	if dto.Repository != nil {
		dep.Repository = &domain.Repository{
			Type: dto.Repository.Type,
			URL:  dto.Repository.URL,
		}
	}
	if dto.Author != nil {
		dep.Author = &domain.Person{
			Name:  dto.Author.Name,
			Email: dto.Author.Email,
		}
	}
	if len(dto.Contributors) > 0 {
		dep.Contributors = make([]domain.Person, len(dto.Contributors))
		for i, c := range dto.Contributors {
			dep.Contributors[i] = domain.Person{Name: c.Name, Email: c.Email}
		}
	}

	return dep
}
