// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package queue_info

type ResourcesUsed struct {
	// +optional
	Memory int64 `json:"memory" yaml:"memory"`
	// +optional
	VCores int64 `json:"vCores" yaml:"vCores"`
	// +optional
	GPUs float64 `json:"gpus" yaml:"gpus"`
}

// LeafQueueStats are the workload facing counters only leaf queues carry.
// UserLimit is a percentage, UserLimitFactor a multiplier of the queue capacity.
type LeafQueueStats struct {
	NumApplications        int           `json:"numApplications"`
	NumActiveApplications  int           `json:"numActiveApplications"`
	NumPendingApplications int           `json:"numPendingApplications"`
	MaxApplications        int           `json:"maxApplications"`
	UserLimit              float64       `json:"userLimit"`
	UserLimitFactor        float64       `json:"userLimitFactor"`
	ResourcesUsed          ResourcesUsed `json:"resourcesUsed"`
}
