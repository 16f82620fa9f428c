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

// Package log provides the shared logging setup for binaries built
// from this module.
package log

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupGlobalLogger parses the provided level string and applies it to
// the global logger.
func SetupGlobalLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setting log level to %s: %w", level, err)
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.Debugf("Using log level %q", lvl)

	return nil
}

// LevelNames returns the comma separated names of all available log
// levels, usable in flag descriptions.
func LevelNames() string {
	names := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		names = append(names, level.String())
	}

	return strings.Join(names, ", ")
}
