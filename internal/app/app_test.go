package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mjeanroy/licnotice/internal/adapters/records"
	"github.com/mjeanroy/licnotice/internal/app"
	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/mjeanroy/licnotice/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op ports.Logger for app tests.
type testLogger struct{}

func (testLogger) Info(string) {}
func (testLogger) Warn(string) {}
func (testLogger) Error(error) {}

// fakeLoader serves a fixed set of records.
type fakeLoader struct {
	deps []domain.Dependency
	err  error
}

func (f *fakeLoader) Load(string) ([]domain.Dependency, error) {
	return f.deps, f.err
}

func (f *fakeLoader) Discover(string) (string, error) {
	return domain.RecordsFileName, nil
}

func newApp(loader *fakeLoader, out *bytes.Buffer) *app.App {
	log := testLogger{}
	return app.New(loader, log, report.NewGenerator(log), report.NewWriter(log)).WithOutput(out)
}

func TestApp_Format(t *testing.T) {
	loader := &fakeLoader{
		deps: []domain.Dependency{
			{Name: "foo", Version: "1.0.0", License: "MIT"},
			{Name: "bar", Version: "2.0.0", License: "Apache-2.0"},
		},
	}

	out := &bytes.Buffer{}
	a := newApp(loader, out)

	err := a.Format(context.Background(), app.FormatOptions{})
	require.NoError(t, err)

	want := "Name: foo\nVersion: 1.0.0\nLicense: MIT\nPrivate: false" +
		domain.DefaultSeparator +
		"Name: bar\nVersion: 2.0.0\nLicense: Apache-2.0\nPrivate: false" +
		"\n"
	assert.Equal(t, want, out.String())
}

func TestApp_Format_CustomSeparator(t *testing.T) {
	loader := &fakeLoader{
		deps: []domain.Dependency{
			{Name: "foo", Version: "1.0.0", License: "MIT"},
			{Name: "bar", Version: "2.0.0", License: "MIT"},
		},
	}

	out := &bytes.Buffer{}
	a := newApp(loader, out)

	err := a.Format(context.Background(), app.FormatOptions{Separator: "\n\n"})
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "Name: "))
	assert.NotContains(t, out.String(), "---")
}

func TestApp_Format_KeepsInputOrder(t *testing.T) {
	loader := &fakeLoader{
		deps: []domain.Dependency{
			{Name: "zlib", Version: "1.0.0", License: "Zlib"},
			{Name: "abc", Version: "1.0.0", License: "MIT"},
		},
	}

	out := &bytes.Buffer{}
	a := newApp(loader, out)

	require.NoError(t, a.Format(context.Background(), app.FormatOptions{}))
	assert.Less(t, strings.Index(out.String(), "zlib"), strings.Index(out.String(), "abc"))
}

func TestApp_Format_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	a := newApp(&fakeLoader{}, out)

	require.NoError(t, a.Format(context.Background(), app.FormatOptions{}))
	assert.Equal(t, domain.EmptyNotice+"\n", out.String())
}

func TestApp_Report(t *testing.T) {
	loader := &fakeLoader{
		deps: []domain.Dependency{
			{Name: "foo", Version: "1.0.0", License: "MIT"},
			{Name: "secret", Version: "1.0.0", License: "MIT", Private: true},
		},
	}

	a := newApp(loader, &bytes.Buffer{})
	outputPath := filepath.Join(t.TempDir(), "THIRD-PARTY.txt")

	err := a.Report(context.Background(), app.ReportOptions{OutputPath: outputPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name: foo")
	assert.NotContains(t, string(data), "secret")
}

func TestApp_Report_IncludePrivate(t *testing.T) {
	loader := &fakeLoader{
		deps: []domain.Dependency{
			{Name: "secret", Version: "1.0.0", License: "MIT", Private: true},
		},
	}

	a := newApp(loader, &bytes.Buffer{})
	outputPath := filepath.Join(t.TempDir(), "THIRD-PARTY.txt")

	err := a.Report(context.Background(), app.ReportOptions{
		OutputPath:     outputPath,
		IncludePrivate: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name: secret")
	assert.Contains(t, string(data), "Private: true")
}

func TestApp_Report_LoadError(t *testing.T) {
	loader := &fakeLoader{err: domain.ErrRecordsNotFound}

	a := newApp(loader, &bytes.Buffer{})

	err := a.Report(context.Background(), app.ReportOptions{
		OutputPath: filepath.Join(t.TempDir(), "THIRD-PARTY.txt"),
	})
	require.ErrorIs(t, err, domain.ErrRecordsNotFound)
}

func TestApp_Report_Watch(t *testing.T) {
	dir := t.TempDir()
	recordsPath := filepath.Join(dir, domain.RecordsFileName)
	outputPath := filepath.Join(dir, "THIRD-PARTY.txt")

	writeRecords := func(name string) {
		content := "dependencies:\n  - name: " + name + "\n    version: 1.0.0\n    license: MIT\n"
		require.NoError(t, os.WriteFile(recordsPath, []byte(content), 0o600))
	}
	writeRecords("foo")

	log := testLogger{}
	a := app.New(records.NewLoader(log), log, report.NewGenerator(log), report.NewWriter(log)).
		WithOutput(&bytes.Buffer{}).
		WithDebounceWindow(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	var reportErr error
	go func() {
		defer wg.Done()
		reportErr = a.Report(ctx, app.ReportOptions{
			RecordsPath: recordsPath,
			OutputPath:  outputPath,
			Watch:       true,
		})
	}()

	// Initial generation happens before the watch loop starts.
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(outputPath)
		return err == nil && strings.Contains(string(data), "Name: foo")
	}, 5*time.Second, 10*time.Millisecond)

	// Give the watcher a moment to register, then change the records file.
	time.Sleep(100 * time.Millisecond)
	writeRecords("bar")

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(outputPath)
		return err == nil && strings.Contains(string(data), "Name: bar")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	wg.Wait()
	require.NoError(t, reportErr)
}
