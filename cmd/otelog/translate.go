// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/otelog/otelog/internal/pkg/decoder"
	"github.com/otelog/otelog/internal/pkg/logging"
	"github.com/otelog/otelog/internal/pkg/must"
	"github.com/otelog/otelog/pkg/event"
	"github.com/otelog/otelog/pkg/otel"
)

var translateCmd = &cobra.Command{
	Use:   "translate [FILE...]",
	Short: "Translate a stream of log events (YAML docs or JSON objects) to OTLP log records",
	Long: `Translate a stream of log events to OTLP log records.
Events are read from the FILE arguments, or from stdin if there are none.
Each event is a YAML document or JSON object with fields:
timestamp, level, message, properties (key/value list), exception (type, message, stacktrace).
One OTLP log record is printed per event, in the --output format.`,
	Run: func(cmd *cobra.Command, args []string) {
		print := must.Must1(newPrinter(os.Stdout, *output))
		if *resourceFile != "" {
			printResource(print, *resourceFile)
		}
		if len(args) == 0 {
			translateStream(os.Stdin, "stdin", print)
			return
		}
		for _, name := range args {
			f := must.Must1(os.Open(name))
			translateStream(f, name, print)
			_ = f.Close()
		}
	},
}

var resourceFile *string

func init() {
	resourceFile = translateCmd.Flags().String("resource", "", "YAML file of resource metadata, printed as OTLP attributes before the records")
	rootCmd.AddCommand(translateCmd)
}

// printResource projects resource metadata from a YAML file and prints each attribute.
func printResource(print printer, name string) {
	data := must.Must1(os.ReadFile(name))
	var attrs map[string]any
	must.Must(errors.Wrapf(yaml.Unmarshal(data, &attrs), "resource file %v", name))
	for _, kv := range otel.Resource(attrs) {
		print(kv)
	}
}

// translateStream prints one OTLP record per event on r.
// A malformed stream is fatal, an untranslatable event is logged and skipped.
func translateStream(r io.Reader, name string, print printer) {
	d := decoder.New(r)
	for {
		var e event.Event
		switch err := d.Decode(&e); {
		case err == io.EOF:
			return
		case err != nil:
			must.Must(errors.Wrapf(err, "%v: line %v", name, d.Line()))
		}
		rec, err := otel.Record(&e, "")
		if err != nil {
			log.Error(err, "skipping event", "source", name, "line", d.Line())
			continue
		}
		log.V(2).Info("translated", "source", name, "line", d.Line(), "event", logging.JSON(e))
		print(rec)
	}
}
