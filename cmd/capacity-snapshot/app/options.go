// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
)

const (
	OutputJSON = "json"
	OutputXML  = "xml"
	OutputTree = "tree"
)

var outputFormats = []string{OutputJSON, OutputXML, OutputTree}

type Options struct {
	QueueConfig string
	ServerURL   string
	Label       string
	Output      string
	Timeout     time.Duration
	Verbosity   int
}

func InitOptions(fs *pflag.FlagSet) *Options {
	options := &Options{}

	fs.StringVar(&options.QueueConfig, "queue-config", "",
		"Snapshot the queue tree described by this configuration file")
	fs.StringVar(&options.ServerURL, "server-url", "",
		"Fetch the snapshot from a running capacity snapshot server")
	fs.StringVar(&options.Label, "label", constants.DefaultNodeLabel,
		"Node label to snapshot, empty for the default partition")
	fs.StringVarP(&options.Output, "output", "o", OutputJSON,
		fmt.Sprintf("Output format, one of %v", outputFormats))
	fs.DurationVar(&options.Timeout, "timeout", 30*time.Second,
		"Timeout of the request to the snapshot server")
	fs.IntVar(&options.Verbosity, "verbosity", 0,
		"Logging verbosity")

	return options
}

func (o *Options) Validate() error {
	if (o.QueueConfig == "") == (o.ServerURL == "") {
		return errors.New("exactly one of --queue-config and --server-url is required")
	}
	if !slices.Contains(outputFormats, o.Output) {
		return fmt.Errorf("unsupported output format %q, expected one of %v", o.Output, outputFormats)
	}
	if o.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}
