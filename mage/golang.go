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

package mage

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/blang/semver/v4"
	"github.com/uwu-tools/magex/pkg"
	"github.com/uwu-tools/magex/shx"

	kpath "k8s.io/utils/path"
)

const (
	// golangci-lint
	defaultGolangCILintVersion = "v1.64.8"
	golangciCmd                = "golangci-lint"
	golangciConfig             = ".golangci.yml"
	golangciModule             = "github.com/golangci/golangci-lint/cmd/golangci-lint"
)

// EnsureGolangCILint makes sure golangci-lint is installed and on the
// PATH.
func EnsureGolangCILint(version string) error {
	if version == "" {
		log.Printf(
			"A golangci-lint version to install was not specified. Using default version: %s",
			defaultGolangCILintVersion,
		)

		version = defaultGolangCILintVersion
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf(
			"%s was not SemVer-compliant, cannot continue: %w",
			version, err,
		)
	}

	if err := pkg.EnsurePackageWith(pkg.EnsurePackageOptions{
		Name:           golangciModule,
		DefaultVersion: version,
		VersionCommand: "version",
	}); err != nil {
		return fmt.Errorf("ensuring package: %w", err)
	}

	return nil
}

// RunGolangCILint runs all golang linters.
func RunGolangCILint(version string, args ...string) error {
	if _, err := kpath.Exists(kpath.CheckSymlinkOnly, golangciConfig); err != nil {
		return fmt.Errorf(
			"checking if golangci-lint config file (%s) exists: %w",
			golangciConfig, err,
		)
	}

	if err := EnsureGolangCILint(version); err != nil {
		return fmt.Errorf("ensuring golangci-lint is installed: %w", err)
	}

	if err := shx.RunV(golangciCmd, "version"); err != nil {
		return fmt.Errorf("getting golangci-lint version: %w", err)
	}

	runArgs := append([]string{"run"}, args...)
	if err := shx.RunV(golangciCmd, runArgs...); err != nil {
		return fmt.Errorf("running golangci-lint linters: %w", err)
	}

	return nil
}

// TestGo runs the go tests, optionally scoped to the provided package
// directories.
func TestGo(verbose bool, pkgs ...string) error {
	cmdArgs := []string{"test"}
	if verbose {
		cmdArgs = append(cmdArgs, "-v")
	}

	if len(pkgs) > 0 {
		for _, p := range pkgs {
			cmdArgs = append(cmdArgs, fmt.Sprintf("./%s/...", p))
		}
	} else {
		cmdArgs = append(cmdArgs, "./...")
	}

	if err := shx.RunV("go", cmdArgs...); err != nil {
		return fmt.Errorf("running go test: %w", err)
	}

	return nil
}

// VerifyGoMod runs go mod tidy and ensures the module files are
// checked in unchanged.
func VerifyGoMod() error {
	if err := shx.RunV("go", "mod", "tidy"); err != nil {
		return fmt.Errorf("running go mod tidy: %w", err)
	}

	if err := shx.RunV("git", "diff", "--exit-code", "go.*"); err != nil {
		return fmt.Errorf("verifying go module files are up to date: %w", err)
	}

	return nil
}

// VerifyBuild compiles all packages of the module.
func VerifyBuild() error {
	if err := shx.RunV("go", "build", "./..."); err != nil {
		return fmt.Errorf("running go build: %w", err)
	}

	return nil
}

// BuildBinary builds the fanout binary into the output path, by
// default bin/fanout.
func BuildBinary(output string) error {
	if output == "" {
		output = filepath.Join("bin", "fanout")
	}

	if err := shx.RunV("go", "build", "-o", output, "./cmd/fanout"); err != nil {
		return fmt.Errorf("building fanout binary: %w", err)
	}

	return nil
}
