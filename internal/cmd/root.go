/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd implements the fanout command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigs.k8s.io/fanout-utils/env"
	"sigs.k8s.io/fanout-utils/log"
	"sigs.k8s.io/fanout-utils/version"
)

// Environment variables usable instead of flags.
const (
	envLogLevel    = "FANOUT_LOG_LEVEL"
	envMaxParallel = "FANOUT_MAX_PARALLEL"
	envTimeout     = "FANOUT_TIMEOUT"
)

// New returns the fanout root command.
func New() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Dispatch batches of HTTP requests concurrently",
		Long: `fanout dispatches a batch of independent HTTP requests concurrently
over a shared connection pool and reports the collected outcomes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return log.SetupGlobalLogger(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(
		&logLevel, "log-level", env.Default(envLogLevel, "info"),
		fmt.Sprintf("the logging verbosity, one of: %s", log.LevelNames()),
	)

	cmd.AddCommand(newSendCommand())
	cmd.AddCommand(version.WithFont("standard"))

	return cmd
}
