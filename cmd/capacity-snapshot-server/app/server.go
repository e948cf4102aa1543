// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/leaf_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/metrics"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/server"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

func flushLogs() {
	if err := log.InfraLogger.Sync(); err != nil &&
		!errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
	}
}

func RunApp() error {
	options := InitOptions(pflag.CommandLine)
	pflag.Parse()
	if err := options.Validate(); err != nil {
		return err
	}

	if err := log.InitLoggers(options.Verbosity); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize loggers: %v\n", err)
	} else {
		defer flushLogs()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, options, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// Run serves snapshots of the configured queue tree until ctx is done.
func Run(ctx context.Context, options *Options, registerer prometheus.Registerer,
	gatherer prometheus.Gatherer) error {
	source, err := server.NewFileSource(options.QueueConfig)
	if err != nil {
		return err
	}
	go source.Run(ctx)

	recorder := metrics.NewMetrics(registerer, options.MetricsNamespace, options.MetricsConstLabels.Get())
	builder := capacity_snapshot.New(leaf_info.New(), capacity_snapshot.WithRecorder(recorder))
	snapshotServer := server.New(source, builder,
		server.WithGatherer(gatherer),
		server.WithProfiling(options.EnableProfiling),
	)
	return snapshotServer.Run(ctx, options.ListenAddress)
}
