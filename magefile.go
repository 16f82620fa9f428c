//go:build mage
// +build mage

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

package main

import (
	"os"

	"sigs.k8s.io/fanout-utils/mage"
)

var Default = Build

// Build builds the fanout binary into bin/fanout.
func Build() error {
	return mage.BuildBinary("")
}

// Test runs all the go tests.
func Test() error {
	return mage.TestGo(true)
}

// Lint runs the golangci-lint linters.
func Lint() error {
	return mage.RunGolangCILint("")
}

// Verify runs the repository verification suite.
func Verify() error {
	if err := mage.VerifyBoilerplate("", "bin", "scripts/boilerplate", false); err != nil {
		return err
	}

	if err := mage.VerifyGoMod(); err != nil {
		return err
	}

	if err := mage.VerifyBuild(); err != nil {
		return err
	}

	return mage.TestGo(true)
}

// Clean removes the build output.
func Clean() error {
	return os.RemoveAll("bin")
}
