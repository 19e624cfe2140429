package records_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mjeanroy/licnotice/internal/adapters/records"
	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op ports.Logger for loader tests.
type testLogger struct{}

func (testLogger) Info(string) {}
func (testLogger) Warn(string) {}
func (testLogger) Error(error) {}

func writeRecords(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.RecordsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	content := `version: "1"
dependencies:
  - name: foo
    version: 1.0.0
    license: MIT
    description: Desc
    homepage: https://x
    repository:
      type: GIT
      url: git@x
    author:
      name: A
      email: a@x
    contributors:
      - name: B
        email: b@x
      - name: C
  - name: bar
    version: 2.0.0
    license: Apache-2.0
    private: true
`

	path := writeRecords(t, t.TempDir(), content)

	loader := records.NewLoader(testLogger{})
	deps, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, deps, 2)

	foo := deps[0]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, "1.0.0", foo.Version)
	assert.Equal(t, "MIT", foo.License)
	assert.False(t, foo.Private)
	assert.Equal(t, "Desc", foo.Description)
	assert.Equal(t, "https://x", foo.Homepage)
	require.NotNil(t, foo.Repository)
	assert.Equal(t, "git@x", foo.Repository.URL)
	require.NotNil(t, foo.Author)
	assert.Equal(t, "A <a@x>", foo.Author.String())
	require.Len(t, foo.Contributors, 2)
	assert.Equal(t, "B <b@x>", foo.Contributors[0].String())
	assert.Equal(t, "C", foo.Contributors[1].String())

	bar := deps[1]
	assert.True(t, bar.Private)
	assert.Nil(t, bar.Repository)
	assert.Nil(t, bar.Author)
	assert.Empty(t, bar.Contributors)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := records.NewLoader(testLogger{})
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read records file")
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	path := writeRecords(t, t.TempDir(), "dependencies: [name: {")

	loader := records.NewLoader(testLogger{})
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse records file")
}

func TestLoader_Load_InvalidRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing name",
			content: "dependencies:\n  - version: 1.0.0\n    license: MIT\n",
			wantErr: domain.ErrMissingName,
		},
		{
			name:    "missing version",
			content: "dependencies:\n  - name: foo\n    license: MIT\n",
			wantErr: domain.ErrMissingVersion,
		},
		{
			name:    "missing license",
			content: "dependencies:\n  - name: foo\n    version: 1.0.0\n",
			wantErr: domain.ErrMissingLicense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRecords(t, t.TempDir(), tt.content)

			loader := records.NewLoader(testLogger{})
			_, err := loader.Load(path)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), domain.ErrInvalidRecord.Error())
		})
	}
}

func TestLoader_Discover(t *testing.T) {
	t.Run("finds records file in parent directory", func(t *testing.T) {
		root := t.TempDir()
		path := writeRecords(t, root, "dependencies: []\n")

		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o750))

		loader := records.NewLoader(testLogger{})
		found, err := loader.Discover(nested)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("errors when nothing is found", func(t *testing.T) {
		loader := records.NewLoader(testLogger{})
		_, err := loader.Discover(t.TempDir())
		require.ErrorIs(t, err, domain.ErrRecordsNotFound)
		assert.Contains(t, err.Error(), domain.RecordsFileName)
	})
}

func TestLoader_Load_EmptyPathDiscovers(t *testing.T) {
	root := t.TempDir()
	writeRecords(t, root, "dependencies:\n  - name: foo\n    version: 1.0.0\n    license: MIT\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(wd) }()
	require.NoError(t, os.Chdir(root))

	loader := records.NewLoader(testLogger{})
	deps, err := loader.Load("")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "foo@1.0.0", deps[0].String())
}
