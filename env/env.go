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

// Package env provides environment variable helpers.
package env

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fanout-utils/env/internal"
)

// Default retrieves the value of the environment variable named by the
// key. It returns the provided default value if the variable is not
// present or set to the empty string.
func Default(key, def string) string {
	value, ok := internal.Impl.LookupEnv(key)
	if !ok || value == "" {
		return def
	}
	return value
}

// IsSet reports whether the environment variable named by the key is
// present, no matter its value.
func IsSet(key string) bool {
	_, ok := internal.Impl.LookupEnv(key)
	return ok
}

// Int behaves like Default but parses the value as an integer. A value
// that does not parse falls back to the default.
func Int(key string, def int) int {
	value := Default(key, "")
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Unable to parse %s=%q as integer: %v", key, value, err)
		return def
	}
	return parsed
}

// Duration behaves like Default but parses the value with
// time.ParseDuration. A value that does not parse falls back to the
// default.
func Duration(key string, def time.Duration) time.Duration {
	value := Default(key, "")
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Unable to parse %s=%q as duration: %v", key, value, err)
		return def
	}
	return parsed
}

// Bool behaves like Default but parses the value with
// strconv.ParseBool. A value that does not parse falls back to the
// default.
func Bool(key string, def bool) bool {
	value := Default(key, "")
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("Unable to parse %s=%q as boolean: %v", key, value, err)
		return def
	}
	return parsed
}
