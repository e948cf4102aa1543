// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package leaf_info

import (
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

// Builder snapshots leaf queues: the common capacities plus the leaf
// counters of queues implementing queue_info.LeafQueue.
type Builder struct{}

var _ capacity_snapshot.LeafBuilder = &Builder{}

func New() *Builder {
	return &Builder{}
}

func (b *Builder) BuildLeafSnapshot(queue queue_info.Queue, label string) (*capacity_snapshot.QueueSnapshot, error) {
	queueName := queue.GetQueueName()
	// Capacities come from the queue's own getters in both views.
	snapshot, err := capacity_snapshot.NewQueueSnapshot(queueName, queue, label)
	if err != nil {
		return nil, err
	}
	snapshot.Leaf = &capacity_snapshot.LeafQueueSnapshot{}

	leafQueue, ok := queue.(queue_info.LeafQueue)
	if !ok {
		log.InfraLogger.V(4).Infof("Queue <%s> has no leaf statistics", queueName)
		return snapshot, nil
	}

	stats, err := leafQueue.GetLeafQueueStats(label)
	if err != nil {
		return nil, common_info.NewQueueError(queueName, label, err)
	}
	snapshot.Leaf = &capacity_snapshot.LeafQueueSnapshot{
		NumApplications:        stats.NumApplications,
		NumActiveApplications:  stats.NumActiveApplications,
		NumPendingApplications: stats.NumPendingApplications,
		MaxApplications:        stats.MaxApplications,
		UserLimit:              stats.UserLimit,
		UserLimitFactor:        stats.UserLimitFactor,
		ResourcesUsed: capacity_snapshot.ResourcesUsedSnapshot{
			Memory: stats.ResourcesUsed.Memory,
			VCores: stats.ResourcesUsed.VCores,
			GPUs:   stats.ResourcesUsed.GPUs,
		},
	}
	return snapshot, nil
}
