// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
)

const indentation = "  "

// Tree writes one line per queue, children indented under their parent.
func Tree(w io.Writer, snapshot *capacity_snapshot.QueueSnapshot) error {
	var err error
	snapshot.Walk(func(queue *capacity_snapshot.QueueSnapshot, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, strings.Repeat(indentation, depth)+queueLine(queue))
	})
	return err
}

func queueLine(queue *capacity_snapshot.QueueSnapshot) string {
	line := fmt.Sprintf("%s  capacity=%s%% used=%s%% max=%s%%",
		queue.QueueName,
		percentage(queue.Capacity),
		percentage(queue.UsedCapacity),
		percentage(queue.MaxCapacity))
	if queue.Leaf == nil {
		return line
	}

	leaf := queue.Leaf
	line += fmt.Sprintf("  apps=%d/%d pending=%d mem=%s vcores=%d",
		leaf.NumApplications, leaf.MaxApplications, leaf.NumPendingApplications,
		humanize.IBytes(uint64(max(leaf.ResourcesUsed.Memory, 0))), leaf.ResourcesUsed.VCores)
	if leaf.ResourcesUsed.GPUs > 0 {
		line += " gpus=" + humanize.FtoaWithDigits(leaf.ResourcesUsed.GPUs, 2)
	}
	return line
}

func percentage(value float64) string {
	return humanize.FtoaWithDigits(value, 2)
}
