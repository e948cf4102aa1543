// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package queue_info

//go:generate mockgen -source=interface.go -destination=mock_queue_info/mock_queue_info.go -package=mock_queue_info

// CapacityLookup reads label scoped capacity fractions. The empty label
// selects the default partition. Implementations return ErrUnknownLabel
// (common_info) for labels they have no capacities for.
type CapacityLookup interface {
	GetUsedCapacity(label string) (float64, error)
	GetCapacity(label string) (float64, error)
	GetMaximumCapacity(label string) (float64, error)
}

// Queue is a node of the live queue tree. Its own CapacityLookup methods are
// the aggregate view, GetQueueCapacities the per-label capacities object.
type Queue interface {
	CapacityLookup
	GetQueueName() string
	GetChildQueues() []Queue
	IsLeafQueue() bool
	GetQueueCapacities() CapacityLookup
}

type LeafQueue interface {
	Queue
	GetLeafQueueStats(label string) (*LeafQueueStats, error)
}

type Scheduler interface {
	GetRootQueue() Queue
	HasNodeLabel(label string) bool
}
