package records

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mjeanroy/licnotice/internal/adapters/logger"
	"github.com/mjeanroy/licnotice/internal/core/ports"
)

// NodeID is the unique identifier for the records loader Graft node.
const NodeID graft.ID = "adapter.records_loader"

func init() {
	graft.Register(graft.Node[ports.RecordsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RecordsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
