// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
)

const (
	queueNameLabel = "queue_name"
	nodeLabelLabel = "label"
	reasonLabel    = "reason"
)

// Metrics exports the last snapshot of every label as gauges.
type Metrics struct {
	queueCapacity     *prometheus.GaugeVec
	queueUsedCapacity *prometheus.GaugeVec
	queueMaxCapacity  *prometheus.GaugeVec
	leafApplications  *prometheus.GaugeVec
	buildLatency      prometheus.Histogram
	buildFailures     *prometheus.CounterVec
}

var _ capacity_snapshot.Recorder = &Metrics{}

func NewMetrics(registerer prometheus.Registerer, namespace string, constLabels map[string]string) *Metrics {
	factory := promauto.With(registerer)
	queueLabels := []string{queueNameLabel, nodeLabelLabel}

	return &Metrics{
		queueCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "queue_capacity_percentage",
				Help:        "Queue configured capacity, percentage of the parent queue",
				ConstLabels: constLabels,
			}, queueLabels,
		),
		queueUsedCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "queue_used_capacity_percentage",
				Help:        "Queue used capacity, percentage of the queue capacity",
				ConstLabels: constLabels,
			}, queueLabels,
		),
		queueMaxCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "queue_max_capacity_percentage",
				Help:        "Queue maximum capacity, percentage of the parent queue",
				ConstLabels: constLabels,
			}, queueLabels,
		),
		leafApplications: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "leaf_queue_applications",
				Help:        "Number of applications in a leaf queue",
				ConstLabels: constLabels,
			}, queueLabels,
		),
		buildLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Name:        "capacity_snapshot_latency_milliseconds",
				Help:        "Capacity snapshot build latency in milliseconds",
				Buckets:     prometheus.ExponentialBuckets(0.05, 2, 12),
				ConstLabels: constLabels,
			},
		),
		buildFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "capacity_snapshot_failures_total",
				Help:        "Number of failed capacity snapshots",
				ConstLabels: constLabels,
			}, []string{nodeLabelLabel, reasonLabel},
		),
	}
}

func (m *Metrics) ObserveBuild(label string, duration time.Duration, err error) {
	m.buildLatency.Observe(float64(duration.Microseconds()) / 1000)
	if err != nil {
		m.buildFailures.WithLabelValues(label, common_info.ErrorKind(err)).Inc()
	}
}

// RecordSnapshot replaces the gauges of the label with the snapshot values,
// dropping queues that are no longer in the tree.
func (m *Metrics) RecordSnapshot(label string, snapshot *capacity_snapshot.QueueSnapshot) {
	if snapshot == nil {
		return
	}
	byLabel := prometheus.Labels{nodeLabelLabel: label}
	m.queueCapacity.DeletePartialMatch(byLabel)
	m.queueUsedCapacity.DeletePartialMatch(byLabel)
	m.queueMaxCapacity.DeletePartialMatch(byLabel)
	m.leafApplications.DeletePartialMatch(byLabel)

	snapshot.Walk(func(queue *capacity_snapshot.QueueSnapshot, _ int) {
		m.queueCapacity.WithLabelValues(queue.QueueName, label).Set(queue.Capacity)
		m.queueUsedCapacity.WithLabelValues(queue.QueueName, label).Set(queue.UsedCapacity)
		m.queueMaxCapacity.WithLabelValues(queue.QueueName, label).Set(queue.MaxCapacity)
		if queue.Leaf != nil {
			m.leafApplications.WithLabelValues(queue.QueueName, label).Set(float64(queue.Leaf.NumApplications))
		}
	})
}
