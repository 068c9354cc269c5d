/*
Copyright 2024 The Kubernetes Authors.

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

// Package app implements the paretorank command line.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"k8s.io/component-base/logs"
	"sigs.k8s.io/yaml"
)

var outputFormats = []string{"json", "yaml"}

// NewCommand creates the paretorank root command with all subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paretorank",
		Short: "Rank objective vectors and evolve knapsack selections with NSGA-II",
		Long: `paretorank sorts objective vectors into non-dominated fronts and computes
their crowding distances. It also runs NSGA-II over multi-objective 0/1
knapsack instances and over the built-in binary benchmark problems.`,
		SilenceUsage: true,
	}
	logs.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newBenchmarkCommand())
	return cmd
}

func validateOutputFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("unsupported output format %q, expected one of %v", format, outputFormats)
	}
	return nil
}

// printObject writes obj to w as indented JSON or as YAML.
func printObject(w io.Writer, format string, obj interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(obj, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(obj)
	default:
		return validateOutputFormat(format)
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
