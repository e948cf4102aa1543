// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

// Package capacity_snapshot builds detached, serializable copies of a live
// queue tree annotated with label scoped capacities.
//
// The builder reads the live tree without any tree wide lock. Each value is
// read on its own, so a snapshot taken while the scheduler updates queues may
// combine values from different instants, on the same queue and across
// queues. Snapshots are meant for display only. Do not add locking around the
// walk: the scheduler owns the tree and must never be blocked by readers.
package capacity_snapshot
