// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package capacity_snapshot

import "encoding/xml"

// QueueSnapshot is a detached copy of a queue's capacities for one label.
// All capacities are percentages.
type QueueSnapshot struct {
	QueueName    string             `json:"queueName" xml:"queueName"`
	Capacity     float64            `json:"capacity" xml:"capacity"`
	UsedCapacity float64            `json:"usedCapacity" xml:"usedCapacity"`
	MaxCapacity  float64            `json:"maxCapacity" xml:"maxCapacity"`
	Queues       []*QueueSnapshot   `json:"queues" xml:"queues>queue"`
	Leaf         *LeafQueueSnapshot `json:"leaf,omitempty" xml:"leaf,omitempty"`
}

type ResourcesUsedSnapshot struct {
	Memory int64   `json:"memory" xml:"memory"`
	VCores int64   `json:"vCores" xml:"vCores"`
	GPUs   float64 `json:"gpus" xml:"gpus"`
}

type LeafQueueSnapshot struct {
	NumApplications        int                   `json:"numApplications" xml:"numApplications"`
	NumActiveApplications  int                   `json:"numActiveApplications" xml:"numActiveApplications"`
	NumPendingApplications int                   `json:"numPendingApplications" xml:"numPendingApplications"`
	MaxApplications        int                   `json:"maxApplications" xml:"maxApplications"`
	UserLimit              float64               `json:"userLimit" xml:"userLimit"`
	UserLimitFactor        float64               `json:"userLimitFactor" xml:"userLimitFactor"`
	ResourcesUsed          ResourcesUsedSnapshot `json:"resourcesUsed" xml:"resourcesUsed"`
}

// SchedulerSnapshot is the root of a snapshot taken through the scheduler.
type SchedulerSnapshot struct {
	XMLName xml.Name `json:"-" xml:"capacityScheduler"`
	Type    string   `json:"type" xml:"type,attr"`
	Label   string   `json:"label" xml:"label,attr"`
	QueueSnapshot
}

// ErrorResponse is the body returned when a snapshot cannot be built.
type ErrorResponse struct {
	XMLName   xml.Name `json:"-" xml:"RemoteException"`
	Exception string   `json:"exception" xml:"exception"`
	Message   string   `json:"message" xml:"message"`
	Queue     string   `json:"queue,omitempty" xml:"queue,omitempty"`
}

func (s *QueueSnapshot) IsLeaf() bool {
	return s.Leaf != nil
}

// Walk visits the snapshot and its descendants depth first, parents first.
func (s *QueueSnapshot) Walk(fn func(snapshot *QueueSnapshot, depth int)) {
	s.walk(fn, 0)
}

func (s *QueueSnapshot) walk(fn func(snapshot *QueueSnapshot, depth int), depth int) {
	fn(s, depth)
	for _, child := range s.Queues {
		child.walk(fn, depth+1)
	}
}
