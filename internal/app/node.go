package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kconf/internal/adapters/kconfig" //nolint:depguard // Wired in app layer
	"go.trai.ch/kconf/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/kconf/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			kconfig.ConfigStoreNodeID,
			kconfig.ArchDetectorNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}

			detector, err := graft.Dep[ports.ArchDetector](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, detector), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			kconfig.ConfigStoreNodeID,
			kconfig.ArchDetectorNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.ArchDetector](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, store, detector), nil
}
