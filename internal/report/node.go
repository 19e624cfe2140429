package report

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mjeanroy/licnotice/internal/adapters/logger"
	"github.com/mjeanroy/licnotice/internal/core/ports"
)

const (
	// GeneratorNodeID is the unique identifier for the notice generator Graft node.
	GeneratorNodeID graft.ID = "report.generator"
	// WriterNodeID is the unique identifier for the notice writer Graft node.
	WriterNodeID graft.ID = "report.writer"
)

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        GeneratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Generator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(log), nil
		},
	})

	graft.Register(graft.Node[*Writer]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(log), nil
		},
	})
}
