// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package capacity_snapshot

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

// Epsilon is the smallest maximum capacity fraction treated as configured.
const Epsilon = 1e-8

const percent = 100

// LeafBuilder snapshots a leaf queue. It only receives the queue, so leaf
// capacities are read from the queue's own getters in both views, while
// parent queues in QueueCapacitiesView read GetQueueCapacities().
type LeafBuilder interface {
	BuildLeafSnapshot(queue queue_info.Queue, label string) (*QueueSnapshot, error)
}

type Recorder interface {
	ObserveBuild(label string, duration time.Duration, err error)
	RecordSnapshot(label string, snapshot *QueueSnapshot)
}

// MetricsView selects where label scoped capacities are read from.
type MetricsView int

const (
	// AggregateView reads capacities from the queue itself.
	AggregateView MetricsView = iota
	// QueueCapacitiesView reads capacity and maximum capacity from the
	// queue's per-label capacities object.
	QueueCapacitiesView
)

type Builder struct {
	leafBuilder LeafBuilder
	recorder    Recorder
}

type Option func(b *Builder)

func WithRecorder(recorder Recorder) Option {
	return func(b *Builder) {
		b.recorder = recorder
	}
}

func New(leafBuilder LeafBuilder, opts ...Option) *Builder {
	b := &Builder{leafBuilder: leafBuilder}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildSnapshot snapshots the subtree rooted at queue, reading capacities
// from each queue's aggregate view.
func (b *Builder) BuildSnapshot(queue queue_info.Queue, label string) (*QueueSnapshot, error) {
	start := time.Now()
	snapshot, err := b.buildQueue(queue, label, AggregateView)
	b.observe(label, start, snapshot, err)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// BuildSchedulerSnapshot snapshots the scheduler's whole queue tree, reading
// capacities from each queue's per-label capacities object. Labels the
// scheduler does not know fail before any queue is read.
func (b *Builder) BuildSchedulerSnapshot(scheduler queue_info.Scheduler, label string) (*SchedulerSnapshot, error) {
	if isNil(scheduler) {
		return nil, common_info.NewQueueError("", label, common_info.ErrInvalidQueueReference)
	}

	start := time.Now()
	var snapshot *QueueSnapshot
	var err error
	if !scheduler.HasNodeLabel(label) {
		err = common_info.NewQueueError("", label, common_info.ErrUnknownLabel)
	} else {
		snapshot, err = b.buildQueue(scheduler.GetRootQueue(), label, QueueCapacitiesView)
	}
	b.observe(label, start, snapshot, err)
	if err != nil {
		return nil, err
	}

	return &SchedulerSnapshot{
		Type:          constants.SchedulerType,
		Label:         label,
		QueueSnapshot: *snapshot,
	}, nil
}

func (b *Builder) buildQueue(queue queue_info.Queue, label string, view MetricsView) (*QueueSnapshot, error) {
	if isNil(queue) {
		return nil, common_info.NewQueueError("", label, common_info.ErrInvalidQueueReference)
	}

	queueName := queue.GetQueueName()
	log.InfraLogger.V(6).Debugf("Building snapshot of queue <%s>, label <%s>", queueName, label)

	lookup, err := view.lookup(queue)
	if err != nil {
		return nil, common_info.NewQueueError(queueName, label, err)
	}
	snapshot, err := NewQueueSnapshot(queueName, lookup, label)
	if err != nil {
		return nil, err
	}

	childQueues := queue.GetChildQueues()
	snapshot.Queues = make([]*QueueSnapshot, 0, len(childQueues))
	for _, child := range childQueues {
		childSnapshot, err := b.buildChild(queueName, child, label, view)
		if err != nil {
			return nil, err
		}
		snapshot.Queues = append(snapshot.Queues, childSnapshot)
	}
	return snapshot, nil
}

func (b *Builder) buildChild(parentName string, child queue_info.Queue, label string,
	view MetricsView) (*QueueSnapshot, error) {
	if isNil(child) {
		return nil, common_info.NewQueueError(parentName, label,
			fmt.Errorf("child queue: %w", common_info.ErrInvalidQueueReference))
	}
	if !child.IsLeafQueue() {
		return b.buildQueue(child, label, view)
	}

	snapshot, err := b.leafBuilder.BuildLeafSnapshot(child, label)
	if err != nil {
		return nil, wrapQueueError(child.GetQueueName(), label, err)
	}
	if snapshot == nil {
		return nil, common_info.NewQueueError(child.GetQueueName(), label,
			fmt.Errorf("leaf snapshot builder returned no snapshot: %w", common_info.ErrInvalidQueueReference))
	}
	return snapshot, nil
}

func (b *Builder) observe(label string, start time.Time, snapshot *QueueSnapshot, err error) {
	if err != nil {
		log.InfraLogger.Errorf("Failed to build capacity snapshot for label <%s>: %v", label, err)
	}
	if b.recorder == nil {
		return
	}
	b.recorder.ObserveBuild(label, time.Since(start), err)
	if err == nil {
		b.recorder.RecordSnapshot(label, snapshot)
	}
}

// NewQueueSnapshot reads the label scoped capacities of a single queue and
// returns them as percentages, with the maximum capacity normalized. The
// returned snapshot has no children.
func NewQueueSnapshot(queueName string, lookup queue_info.CapacityLookup, label string) (*QueueSnapshot, error) {
	usedCapacity, err := lookup.GetUsedCapacity(label)
	if err != nil {
		return nil, wrapQueueError(queueName, label, err)
	}
	capacity, err := lookup.GetCapacity(label)
	if err != nil {
		return nil, wrapQueueError(queueName, label, err)
	}
	maxCapacity, err := lookup.GetMaximumCapacity(label)
	if err != nil {
		return nil, wrapQueueError(queueName, label, err)
	}

	return &QueueSnapshot{
		QueueName:    queueName,
		Capacity:     capacity * percent,
		UsedCapacity: usedCapacity * percent,
		MaxCapacity:  NormalizeMaximumCapacity(maxCapacity) * percent,
		Queues:       []*QueueSnapshot{},
	}, nil
}

// NormalizeMaximumCapacity treats an unset (below Epsilon) or above-full
// maximum capacity fraction as 1.
func NormalizeMaximumCapacity(maxCapacity float64) float64 {
	if maxCapacity < Epsilon || maxCapacity > 1 {
		return 1
	}
	return maxCapacity
}

func (v MetricsView) lookup(queue queue_info.Queue) (queue_info.CapacityLookup, error) {
	if v != QueueCapacitiesView {
		return queue, nil
	}
	capacities := queue.GetQueueCapacities()
	if isNil(capacities) {
		return nil, fmt.Errorf("queue capacities: %w", common_info.ErrInvalidQueueReference)
	}
	return &queueCapacitiesLookup{queue: queue, capacities: capacities}, nil
}

type queueCapacitiesLookup struct {
	queue      queue_info.Queue
	capacities queue_info.CapacityLookup
}

func (l *queueCapacitiesLookup) GetUsedCapacity(label string) (float64, error) {
	return l.queue.GetUsedCapacity(label)
}

func (l *queueCapacitiesLookup) GetCapacity(label string) (float64, error) {
	return l.capacities.GetCapacity(label)
}

func (l *queueCapacitiesLookup) GetMaximumCapacity(label string) (float64, error) {
	return l.capacities.GetMaximumCapacity(label)
}

func wrapQueueError(queueName, label string, err error) error {
	var queueErr *common_info.QueueError
	if errors.As(err, &queueErr) {
		return err
	}
	return common_info.NewQueueError(queueName, label, err)
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
