// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package queue_info

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
)

type QueueKind int

const (
	ParentQueueKind QueueKind = iota
	LeafQueueKind
)

func (k QueueKind) String() string {
	if k == LeafQueueKind {
		return "leaf"
	}
	return "parent"
}

// QueueInfo is a live queue. Every getter takes only this queue's own lock,
// so readers walking the tree may observe different queues at different
// instants while the scheduler keeps updating them.
type QueueInfo struct {
	UID         common_info.QueueID
	Name        string
	ParentQueue common_info.QueueID
	Kind        QueueKind

	capacities *QueueCapacities

	mutex         sync.RWMutex
	childQueues   []*QueueInfo
	leafStats     LeafQueueStats
	resourcesUsed map[string]ResourcesUsed
}

var (
	_ Queue     = &QueueInfo{}
	_ LeafQueue = &QueueInfo{}
)

func NewQueueInfo(name string, kind QueueKind) *QueueInfo {
	return &QueueInfo{
		UID:           common_info.QueueID(name),
		Name:          name,
		Kind:          kind,
		capacities:    NewQueueCapacities(),
		childQueues:   []*QueueInfo{},
		resourcesUsed: map[string]ResourcesUsed{},
	}
}

func (q *QueueInfo) GetQueueName() string {
	return q.Name
}

func (q *QueueInfo) IsLeafQueue() bool {
	return q.Kind == LeafQueueKind
}

// GetChildQueues returns the children in configuration order. The returned
// slice is a copy; the queues themselves are live.
func (q *QueueInfo) GetChildQueues() []Queue {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	children := make([]Queue, 0, len(q.childQueues))
	for _, child := range q.childQueues {
		children = append(children, child)
	}
	return children
}

func (q *QueueInfo) children() []*QueueInfo {
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	return slices.Clone(q.childQueues)
}

func (q *QueueInfo) AddChildQueue(child *QueueInfo) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if slices.Contains(q.childQueues, child) {
		return
	}
	child.ParentQueue = q.UID
	q.childQueues = append(q.childQueues, child)
}

func (q *QueueInfo) GetQueueCapacities() CapacityLookup {
	return q.capacities
}

func (q *QueueInfo) Capacities() *QueueCapacities {
	return q.capacities
}

func (q *QueueInfo) GetUsedCapacity(label string) (float64, error) {
	return q.capacities.GetUsedCapacity(label)
}

func (q *QueueInfo) GetCapacity(label string) (float64, error) {
	return q.capacities.GetCapacity(label)
}

func (q *QueueInfo) GetMaximumCapacity(label string) (float64, error) {
	return q.capacities.GetMaximumCapacity(label)
}

// GetLeafQueueStats returns a copy of the leaf counters with the resources
// used on the given label.
func (q *QueueInfo) GetLeafQueueStats(label string) (*LeafQueueStats, error) {
	if !q.capacities.HasLabel(label) {
		return nil, common_info.ErrUnknownLabel
	}
	q.mutex.RLock()
	defer q.mutex.RUnlock()
	stats := q.leafStats
	stats.ResourcesUsed = q.resourcesUsed[label]
	return &stats, nil
}

func (q *QueueInfo) SetLeafQueueStats(stats LeafQueueStats) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.leafStats = stats
	q.leafStats.ResourcesUsed = ResourcesUsed{}
}

func (q *QueueInfo) SetResourcesUsed(label string, used ResourcesUsed) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.resourcesUsed[label] = used
}
