// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/client"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/leaf_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot/render"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/conf"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

func RunApp() error {
	options := InitOptions(pflag.CommandLine)
	pflag.Parse()
	if err := options.Validate(); err != nil {
		return err
	}

	if err := log.InitLoggers(options.Verbosity); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize loggers: %v\n", err)
	} else {
		defer func() { _ = log.InfraLogger.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, options, os.Stdout)
}

// Run takes one snapshot and writes it to out in the requested format.
func Run(ctx context.Context, options *Options, out io.Writer) error {
	snapshot, err := takeSnapshot(ctx, options)
	if err != nil {
		return err
	}
	return write(out, snapshot, options.Output)
}

func takeSnapshot(ctx context.Context, options *Options) (*capacity_snapshot.SchedulerSnapshot, error) {
	if options.ServerURL != "" {
		ctx, cancel := context.WithTimeout(ctx, options.Timeout)
		defer cancel()
		log.InfraLogger.V(3).Infof("Fetching snapshot of label <%s> from %s", options.Label, options.ServerURL)
		return client.New(options.ServerURL).GetSnapshot(ctx, options.Label)
	}

	config, err := conf.Load(options.QueueConfig)
	if err != nil {
		return nil, err
	}
	tree, err := config.BuildQueueTree()
	if err != nil {
		return nil, err
	}
	log.InfraLogger.V(3).Infof("Building snapshot of label <%s> from %d queues", options.Label, tree.Len())
	return capacity_snapshot.New(leaf_info.New()).BuildSchedulerSnapshot(tree, options.Label)
}

func write(out io.Writer, snapshot *capacity_snapshot.SchedulerSnapshot, output string) error {
	switch output {
	case OutputTree:
		return render.Tree(out, &snapshot.QueueSnapshot)
	case OutputXML:
		if _, err := io.WriteString(out, xml.Header); err != nil {
			return err
		}
		encoder := xml.NewEncoder(out)
		encoder.Indent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			return err
		}
		_, err := io.WriteString(out, "\n")
		return err
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snapshot)
	}
}
