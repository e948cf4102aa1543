// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package queue_info

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
)

// Capacities holds the fractions of a single label. Capacity and UsedCapacity
// are in [0,1]; MaximumCapacity is 0 when unset and may exceed 1 when the
// queue is misconfigured.
type Capacities struct {
	Capacity        float64 `json:"capacity"`
	UsedCapacity    float64 `json:"usedCapacity"`
	MaximumCapacity float64 `json:"maximumCapacity"`
}

type QueueCapacities struct {
	mutex   sync.RWMutex
	byLabel map[string]*Capacities
}

var _ CapacityLookup = &QueueCapacities{}

func NewQueueCapacities() *QueueCapacities {
	return &QueueCapacities{byLabel: map[string]*Capacities{}}
}

func (qc *QueueCapacities) GetCapacity(label string) (float64, error) {
	c, err := qc.get(label)
	if err != nil {
		return 0, err
	}
	return c.Capacity, nil
}

func (qc *QueueCapacities) GetUsedCapacity(label string) (float64, error) {
	c, err := qc.get(label)
	if err != nil {
		return 0, err
	}
	return c.UsedCapacity, nil
}

func (qc *QueueCapacities) GetMaximumCapacity(label string) (float64, error) {
	c, err := qc.get(label)
	if err != nil {
		return 0, err
	}
	return c.MaximumCapacity, nil
}

func (qc *QueueCapacities) HasLabel(label string) bool {
	qc.mutex.RLock()
	defer qc.mutex.RUnlock()
	_, found := qc.byLabel[label]
	return found
}

// GetNodeLabels returns the labels capacities are configured for, sorted.
func (qc *QueueCapacities) GetNodeLabels() []string {
	qc.mutex.RLock()
	defer qc.mutex.RUnlock()
	labels := make([]string, 0, len(qc.byLabel))
	for label := range qc.byLabel {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (qc *QueueCapacities) SetCapacities(label string, capacities Capacities) {
	qc.mutex.Lock()
	defer qc.mutex.Unlock()
	c := capacities
	qc.byLabel[label] = &c
}

func (qc *QueueCapacities) SetCapacity(label string, value float64) {
	qc.update(label, func(c *Capacities) { c.Capacity = value })
}

func (qc *QueueCapacities) SetUsedCapacity(label string, value float64) {
	qc.update(label, func(c *Capacities) { c.UsedCapacity = value })
}

func (qc *QueueCapacities) SetMaximumCapacity(label string, value float64) {
	qc.update(label, func(c *Capacities) { c.MaximumCapacity = value })
}

func (qc *QueueCapacities) get(label string) (Capacities, error) {
	qc.mutex.RLock()
	defer qc.mutex.RUnlock()
	c, found := qc.byLabel[label]
	if !found {
		return Capacities{}, common_info.ErrUnknownLabel
	}
	return *c, nil
}

func (qc *QueueCapacities) update(label string, fn func(c *Capacities)) {
	qc.mutex.Lock()
	defer qc.mutex.Unlock()
	c, found := qc.byLabel[label]
	if !found {
		c = &Capacities{}
		qc.byLabel[label] = c
	}
	fn(c)
}
