// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/xhit/go-str2duration/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info"
)

// ClusterConfig describes a queue tree and the node labels of the cluster.
type ClusterConfig struct {
	NodeLabels      []string    `yaml:"nodeLabels,omitempty"`
	RefreshInterval string      `yaml:"refreshInterval,omitempty"`
	Root            QueueConfig `yaml:"root"`
}

type QueueConfig struct {
	Name       string                    `yaml:"name"`
	Capacities map[string]CapacityConfig `yaml:"capacities,omitempty"`
	Leaf       *LeafConfig               `yaml:"leaf,omitempty"`
	Queues     []QueueConfig             `yaml:"queues,omitempty"`
}

// CapacityConfig holds fractions. An unset maximum means "no maximum".
type CapacityConfig struct {
	Capacity        *float64 `yaml:"capacity,omitempty"`
	UsedCapacity    *float64 `yaml:"usedCapacity,omitempty"`
	MaximumCapacity *float64 `yaml:"maximumCapacity,omitempty"`
}

type LeafConfig struct {
	NumApplications        int                                 `yaml:"numApplications"`
	NumActiveApplications  int                                 `yaml:"numActiveApplications"`
	NumPendingApplications int                                 `yaml:"numPendingApplications"`
	MaxApplications        int                                 `yaml:"maxApplications"`
	UserLimit              float64                             `yaml:"userLimit"`
	UserLimitFactor        float64                             `yaml:"userLimitFactor"`
	ResourcesUsed          map[string]queue_info.ResourcesUsed `yaml:"resourcesUsed,omitempty"`
}

// Load reads, validates and normalizes a cluster configuration file.
func Load(path string) (*ClusterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read queue configuration %s", path)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid queue configuration %s", path)
	}
	return config, nil
}

func Parse(data []byte) (*ClusterConfig, error) {
	config := &ClusterConfig{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "failed to decode yaml")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Normalize()
	return config, nil
}

// Validate reports every problem of the configuration at once.
func (c *ClusterConfig) Validate() error {
	var err error
	declared := map[string]bool{constants.DefaultNodeLabel: true}
	for _, label := range c.NodeLabels {
		if label == constants.DefaultNodeLabel {
			err = multierr.Append(err, fmt.Errorf("node label must not be empty"))
			continue
		}
		declared[label] = true
	}

	if _, parseErr := c.GetRefreshInterval(); parseErr != nil {
		err = multierr.Append(err, parseErr)
	}

	seen := map[string]bool{}
	err = multierr.Append(err, c.Root.validate(declared, seen))
	return err
}

func (q *QueueConfig) validate(declared, seen map[string]bool) error {
	var err error
	if q.Name == "" {
		err = multierr.Append(err, fmt.Errorf("queue name must not be empty"))
	} else if seen[q.Name] {
		err = multierr.Append(err, fmt.Errorf("duplicate queue name <%s>", q.Name))
	}
	seen[q.Name] = true

	for label, capacities := range q.Capacities {
		if !declared[label] {
			err = multierr.Append(err, fmt.Errorf("queue <%s>: label <%s> is not a cluster node label", q.Name, label))
		}
		err = multierr.Append(err, validateFraction(q.Name, label, "capacity", capacities.Capacity))
		err = multierr.Append(err, validateFraction(q.Name, label, "usedCapacity", capacities.UsedCapacity))
		if ptr.Deref(capacities.MaximumCapacity, 0) < 0 {
			err = multierr.Append(err, fmt.Errorf("queue <%s>, label <%s>: maximumCapacity must not be negative", q.Name, label))
		}
	}

	if q.Leaf != nil && len(q.Queues) > 0 {
		err = multierr.Append(err, fmt.Errorf("leaf queue <%s> cannot have child queues", q.Name))
	}
	if q.Leaf != nil {
		for label := range q.Leaf.ResourcesUsed {
			if _, found := q.Capacities[label]; !found && label != constants.DefaultNodeLabel {
				err = multierr.Append(err, fmt.Errorf("queue <%s>: resources used on label <%s> without capacities", q.Name, label))
			}
		}
	}

	for i := range q.Queues {
		err = multierr.Append(err, q.Queues[i].validate(declared, seen))
	}
	return err
}

func validateFraction(queueName, label, field string, value *float64) error {
	v := ptr.Deref(value, 0)
	if v < 0 || v > 1 {
		return fmt.Errorf("queue <%s>, label <%s>: %s %v is outside [0, 1]", queueName, label, field, v)
	}
	return nil
}

// Normalize fills defaults: every queue gets default label capacities and
// the root queue owns the whole cluster unless configured otherwise.
func (c *ClusterConfig) Normalize() {
	c.Root.normalize()
	for label, capacities := range c.Root.Capacities {
		if capacities.Capacity == nil {
			capacities.Capacity = ptr.To(1.0)
			c.Root.Capacities[label] = capacities
		}
	}
}

func (q *QueueConfig) normalize() {
	if q.Capacities == nil {
		q.Capacities = map[string]CapacityConfig{}
	}
	if _, found := q.Capacities[constants.DefaultNodeLabel]; !found {
		q.Capacities[constants.DefaultNodeLabel] = CapacityConfig{}
	}
	for i := range q.Queues {
		q.Queues[i].normalize()
	}
}

// GetRefreshInterval returns how often the file should be reloaded, 0 for never.
func (c *ClusterConfig) GetRefreshInterval() (time.Duration, error) {
	if c.RefreshInterval == "" {
		return 0, nil
	}
	interval, err := str2duration.ParseDuration(c.RefreshInterval)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid refreshInterval %q", c.RefreshInterval)
	}
	if interval < 0 {
		return 0, fmt.Errorf("refreshInterval %q must not be negative", c.RefreshInterval)
	}
	return interval, nil
}

// BuildQueueTree creates a live queue tree from the configuration. A queue is
// a leaf queue if and only if it has a leaf section.
func (c *ClusterConfig) BuildQueueTree() (*queue_info.QueueTree, error) {
	return queue_info.NewQueueTree(c.Root.build(), c.NodeLabels)
}

func (q *QueueConfig) build() *queue_info.QueueInfo {
	kind := queue_info.ParentQueueKind
	if q.Leaf != nil {
		kind = queue_info.LeafQueueKind
	}
	queue := queue_info.NewQueueInfo(q.Name, kind)
	for label, capacities := range q.Capacities {
		queue.Capacities().SetCapacities(label, queue_info.Capacities{
			Capacity:        ptr.Deref(capacities.Capacity, 0),
			UsedCapacity:    ptr.Deref(capacities.UsedCapacity, 0),
			MaximumCapacity: ptr.Deref(capacities.MaximumCapacity, 0),
		})
	}

	if q.Leaf != nil {
		queue.SetLeafQueueStats(queue_info.LeafQueueStats{
			NumApplications:        q.Leaf.NumApplications,
			NumActiveApplications:  q.Leaf.NumActiveApplications,
			NumPendingApplications: q.Leaf.NumPendingApplications,
			MaxApplications:        q.Leaf.MaxApplications,
			UserLimit:              q.Leaf.UserLimit,
			UserLimitFactor:        q.Leaf.UserLimitFactor,
		})
		for label, used := range q.Leaf.ResourcesUsed {
			queue.SetResourcesUsed(label, used)
		}
	}

	for i := range q.Queues {
		queue.AddChildQueue(q.Queues[i].build())
	}
	return queue
}
