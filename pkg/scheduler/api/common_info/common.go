// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package common_info

import "k8s.io/apimachinery/pkg/types"

// QueueID is a unique identifier of a queue in the queue tree.
type QueueID types.UID
