/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomsh/mesh"
	"github.com/notargets/gomsh/mesh/readers"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect <file.msh>",
	Short: "Load an MSH file and print a summary of its contents",
	Long: `Load an MSH file and print a summary of its contents: mesh type,
dimension, entity counts, grid axes and field shapes. With --adjacency the
vertex graph is built and its degree statistics are added.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		switch viper.GetString("profile") {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		case "":
		default:
			return fmt.Errorf("unknown profile type %q, use cpu or mem", viper.GetString("profile"))
		}
		var (
			log = newLogger(viper.GetString("log-level"))
			msh *mesh.Msh
			S   mesh.Summary
		)
		if msh, err = readers.ReadMsh(args[0], readers.WithLogger(log)); err != nil {
			return
		}
		if S, err = msh.Summary(viper.GetBool("adjacency")); err != nil {
			return
		}
		return printSummary(cmd, S, viper.GetString("output"))
	},
}

func printSummary(cmd *cobra.Command, S mesh.Summary, format string) (err error) {
	var data []byte
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(S)
	case "json":
		if data, err = json.MarshalIndent(S, "", "  "); err == nil {
			data = append(data, '\n')
		}
	default:
		err = fmt.Errorf("unknown output format %q, use yaml or json", format)
	}
	if err != nil {
		return
	}
	_, err = cmd.OutOrStdout().Write(data)
	return
}

func init() {
	rootCmd.AddCommand(InspectCmd)
	InspectCmd.Flags().StringP("output", "o", "yaml", "output format: yaml or json")
	InspectCmd.Flags().BoolP("adjacency", "a", false, "build the vertex graph and report degree statistics")
	InspectCmd.Flags().String("profile", "", "write a cpu or mem profile to the working directory")
	viper.BindPFlag("output", InspectCmd.Flags().Lookup("output"))
	viper.BindPFlag("adjacency", InspectCmd.Flags().Lookup("adjacency"))
	viper.BindPFlag("profile", InspectCmd.Flags().Lookup("profile"))
}
