// Package report assembles formatted dependency blocks into a third-party
// notices document.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/mjeanroy/licnotice/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// maxRenderWorkers bounds the number of concurrent template executions.
const maxRenderWorkers = 8

// Options configures notice generation.
type Options struct {
	// IncludePrivate keeps private dependencies in the notice.
	IncludePrivate bool

	// Separator is inserted between dependency blocks.
	// Empty means domain.DefaultSeparator.
	Separator string

	// Template is the per-dependency template source.
	// Empty means the fixed-layout text block.
	Template string

	// TemplatePath reads the per-dependency template from a file.
	// Takes precedence over Template.
	TemplatePath string
}

// Generator renders a set of dependency records into a notice document.
type Generator struct {
	logger ports.Logger
}

// NewGenerator creates a new Generator with the given logger.
func NewGenerator(logger ports.Logger) *Generator {
	return &Generator{logger: logger}
}

// Render produces the notice document for the given dependencies:
// private records are dropped unless opts.IncludePrivate, duplicates
// (same name@version) are collapsed keeping the first occurrence, blocks are
// sorted by name then version and joined with the separator. An empty set
// yields domain.EmptyNotice.
func (g *Generator) Render(ctx context.Context, deps []domain.Dependency, opts Options) (string, error) {
	var tmpl *blockTemplate
	var err error
	if opts.TemplatePath != "" {
		tmpl, err = newBlockTemplateFromFile(opts.TemplatePath)
	} else {
		tmpl, err = newBlockTemplate(opts.Template)
	}
	if err != nil {
		return "", err
	}

	selected := g.selectDependencies(deps, opts.IncludePrivate)
	if len(selected) == 0 {
		return domain.EmptyNotice, nil
	}

	blocks := make([]string, len(selected))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxRenderWorkers)

	for i := range selected {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			block, err := tmpl.Render(&selected[i])
			if err != nil {
				return err
			}
			blocks[i] = block
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return "", err
	}

	separator := opts.Separator
	if separator == "" {
		separator = domain.DefaultSeparator
	}

	return strings.Join(blocks, separator), nil
}

// selectDependencies filters, deduplicates and orders the records.
func (g *Generator) selectDependencies(deps []domain.Dependency, includePrivate bool) []domain.Dependency {
	seen := make(map[string]bool, len(deps))
	selected := make([]domain.Dependency, 0, len(deps))

	for i := range deps {
		dep := deps[i]
		if dep.Private && !includePrivate {
			g.logger.Info(fmt.Sprintf("skipping private dependency %s", dep.String()))
			continue
		}

		key := dep.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		selected = append(selected, dep)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Name != selected[j].Name {
			return selected[i].Name < selected[j].Name
		}
		return selected[i].Version < selected[j].Version
	})

	return selected
}
