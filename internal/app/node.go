package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mjeanroy/licnotice/internal/adapters/logger"
	"github.com/mjeanroy/licnotice/internal/adapters/records"
	"github.com/mjeanroy/licnotice/internal/core/ports"
	"github.com/mjeanroy/licnotice/internal/report"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			records.NodeID,
			logger.NodeID,
			report.GeneratorNodeID,
			report.WriterNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RecordsLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[*report.Generator](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[*report.Writer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, generator, writer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
