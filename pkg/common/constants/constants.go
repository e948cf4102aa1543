// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package constants

const (
	// DefaultNodeLabel selects the default (unlabeled) node partition.
	DefaultNodeLabel = ""

	DefaultMetricsNamespace = "kai"
	DefaultListenAddress    = ":8080"
	DefaultVerbosity        = 3

	SchedulerType    = "capacityScheduler"
	SchedulerAPIPath = "/ws/v1/cluster/scheduler"
	LabelQueryParam  = "label"
)
