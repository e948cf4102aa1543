// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package queue_info

import (
	"fmt"
	"sync"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

// QueueTree owns the live queues and the node labels known to the cluster.
type QueueTree struct {
	root       *QueueInfo
	nodeLabels map[string]bool

	mutex  sync.RWMutex
	queues map[common_info.QueueID]*QueueInfo
}

var _ Scheduler = &QueueTree{}

func NewQueueTree(root *QueueInfo, nodeLabels []string) (*QueueTree, error) {
	if root == nil {
		return nil, fmt.Errorf("queue tree root: %w", common_info.ErrInvalidQueueReference)
	}

	tree := &QueueTree{
		root:       root,
		nodeLabels: map[string]bool{constants.DefaultNodeLabel: true},
		queues:     map[common_info.QueueID]*QueueInfo{},
	}
	for _, label := range nodeLabels {
		tree.nodeLabels[label] = true
	}
	if err := tree.index(root); err != nil {
		return nil, err
	}
	return tree, nil
}

func (t *QueueTree) index(queue *QueueInfo) error {
	if _, found := t.queues[queue.UID]; found {
		return fmt.Errorf("duplicate queue name <%s>", queue.Name)
	}
	t.queues[queue.UID] = queue
	for _, child := range queue.children() {
		if err := t.index(child); err != nil {
			return err
		}
	}
	return nil
}

func (t *QueueTree) GetRootQueue() Queue {
	return t.root
}

func (t *QueueTree) HasNodeLabel(label string) bool {
	return t.nodeLabels[label]
}

func (t *QueueTree) GetNodeLabels() []string {
	labels := make([]string, 0, len(t.nodeLabels))
	for label := range t.nodeLabels {
		labels = append(labels, label)
	}
	return labels
}

func (t *QueueTree) GetQueue(name string) (*QueueInfo, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	queue, found := t.queues[common_info.QueueID(name)]
	return queue, found
}

func (t *QueueTree) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.queues)
}

// AddQueue attaches a new queue under an existing parent queue.
func (t *QueueTree) AddQueue(parentName string, queue *QueueInfo) error {
	if queue == nil {
		return common_info.ErrInvalidQueueReference
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	parent, found := t.queues[common_info.QueueID(parentName)]
	if !found {
		return fmt.Errorf("parent queue <%s> not found", parentName)
	}
	if parent.IsLeafQueue() {
		return fmt.Errorf("parent queue <%s> is a %s queue", parentName, parent.Kind)
	}
	if _, found := t.queues[queue.UID]; found {
		return fmt.Errorf("duplicate queue name <%s>", queue.Name)
	}
	t.queues[queue.UID] = queue
	parent.AddChildQueue(queue)
	log.InfraLogger.V(4).Infof("Added %s queue <%s> under <%s>", queue.Kind, queue.Name, parentName)
	return nil
}
