package kconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kconf/internal/adapters/logger"
	"go.trai.ch/kconf/internal/core/ports"
)

const (
	// StoreNodeID identifies the concrete Store node.
	StoreNodeID graft.ID = "adapter.kconfig.store"
	// ConfigStoreNodeID identifies the ports.ConfigStore binding.
	ConfigStoreNodeID graft.ID = "adapter.kconfig.config_store"
	// ArchDetectorNodeID identifies the ports.ArchDetector binding.
	ArchDetectorNodeID graft.ID = "adapter.kconfig.arch_detector"
)

func init() {
	// Concrete Store, shared by both interface bindings so they see one cache.
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        ConfigStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			return graft.Dep[*Store](ctx)
		},
	})

	graft.Register(graft.Node[ports.ArchDetector]{
		ID:        ArchDetectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.ArchDetector, error) {
			return graft.Dep[*Store](ctx)
		},
	})
}
