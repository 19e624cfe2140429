package records

// RecordsFile represents the structure of the licnotice.yaml records file.
type RecordsFile struct {
	Version      string          `yaml:"version"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents one dependency record in the records file.
type DependencyDTO struct {
	Name         string         `yaml:"name"`
	Version      string         `yaml:"version"`
	License      string         `yaml:"license"`
	Private      bool           `yaml:"private"`
	Description  string         `yaml:"description"`
	Homepage     string         `yaml:"homepage"`
	Repository   *RepositoryDTO `yaml:"repository"`
	Author       *PersonDTO     `yaml:"author"`
	Contributors []PersonDTO    `yaml:"contributors"`
}

// RepositoryDTO represents a source repository in the records file.
type RepositoryDTO struct {
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
}

// PersonDTO represents an author or contributor in the records file.
type PersonDTO struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}
