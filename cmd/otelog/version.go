// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package main

import (
	"fmt"

	"github.com/otelog/otelog/pkg/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this command.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(build.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
