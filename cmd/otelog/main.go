// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/otelog/otelog/internal/pkg/logging"
	"github.com/otelog/otelog/internal/pkg/must"
	"github.com/otelog/otelog/pkg/build"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "otelog",
		Short:   "Translate structured log events to OTLP log records",
		Version: build.Version,
	}
	log = logging.Log()

	// Global Flags
	output     *string
	verbose    *int
	panicOnErr *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	output = rootCmd.PersistentFlags().StringP("output", "o", "json", "Output format: json, json-pretty or yaml")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
