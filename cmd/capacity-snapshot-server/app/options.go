// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	kaiflags "github.com/NVIDIA/kai-queue-snapshot/pkg/common/flags"
)

type Options struct {
	QueueConfig     string
	ListenAddress   string
	EnableProfiling bool
	Verbosity       int

	MetricsNamespace   string
	MetricsConstLabels kaiflags.StringMapFlag
}

func InitOptions(fs *pflag.FlagSet) *Options {
	options := &Options{}

	fs.StringVar(&options.QueueConfig, "queue-config", "",
		"Path to the queue tree configuration file")
	fs.StringVar(&options.ListenAddress, "listen-address", constants.DefaultListenAddress,
		"The address the snapshot, health and metrics endpoints bind to.")
	fs.BoolVar(&options.EnableProfiling, "enable-profiling", false,
		"Serve pprof endpoints under /debug/pprof")
	fs.IntVar(&options.Verbosity, "verbosity", constants.DefaultVerbosity,
		"Logging verbosity")
	fs.StringVar(&options.MetricsNamespace, "metrics-namespace", constants.DefaultMetricsNamespace,
		"Metrics namespace.")
	fs.Var(&options.MetricsConstLabels, "metrics-const-labels",
		"Constant labels added to every metric, e.g. 'cluster=a,region=b'.")

	return options
}

func (o *Options) Validate() error {
	if o.QueueConfig == "" {
		return errors.New("--queue-config is required")
	}
	if o.ListenAddress == "" {
		return errors.New("--listen-address must not be empty")
	}
	if o.Verbosity < 0 {
		return errors.New("--verbosity must not be negative")
	}
	return nil
}
