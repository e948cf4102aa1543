// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/queue_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/conf"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

// SnapshotSource provides the scheduler whose queue tree is snapshotted.
type SnapshotSource interface {
	Scheduler() queue_info.Scheduler
}

type staticSource struct {
	scheduler queue_info.Scheduler
}

func NewStaticSource(scheduler queue_info.Scheduler) SnapshotSource {
	return &staticSource{scheduler: scheduler}
}

func (s *staticSource) Scheduler() queue_info.Scheduler {
	return s.scheduler
}

// FileSource serves a queue tree loaded from a configuration file. Reloads
// swap the whole tree, so a snapshot in progress keeps reading the tree it
// started with.
type FileSource struct {
	path            string
	tree            atomic.Pointer[queue_info.QueueTree]
	refreshInterval atomic.Int64
}

func NewFileSource(path string) (*FileSource, error) {
	s := &FileSource{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileSource) Scheduler() queue_info.Scheduler {
	return s.tree.Load()
}

func (s *FileSource) RefreshInterval() time.Duration {
	return time.Duration(s.refreshInterval.Load())
}

// Reload reads the configuration file again. On failure the current tree is kept.
func (s *FileSource) Reload() error {
	config, err := conf.Load(s.path)
	if err != nil {
		return err
	}
	interval, err := config.GetRefreshInterval()
	if err != nil {
		return errors.Wrapf(err, "invalid queue configuration %s", s.path)
	}
	tree, err := config.BuildQueueTree()
	if err != nil {
		return errors.Wrapf(err, "failed to build queue tree from %s", s.path)
	}

	s.tree.Store(tree)
	s.refreshInterval.Store(int64(interval))
	log.InfraLogger.V(3).Infof("Loaded queue tree from %s: %d queues, node labels %v",
		s.path, tree.Len(), tree.GetNodeLabels())
	return nil
}

// Run reloads the file every refresh interval until ctx is done. It returns
// immediately when the configuration disables refreshing.
func (s *FileSource) Run(ctx context.Context) {
	interval := s.RefreshInterval()
	if interval <= 0 {
		log.InfraLogger.V(4).Infof("Queue configuration refresh disabled for %s", s.path)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Reload(); err != nil {
				log.InfraLogger.Errorf("Failed to reload queue configuration, keeping previous tree: %v", err)
				continue
			}
			next := s.RefreshInterval()
			if next <= 0 {
				log.InfraLogger.V(4).Infof("Queue configuration refresh disabled for %s", s.path)
				return
			}
			if next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}
