package config

import (
	"flag"
	"log"
	"os"
)

const (
	DEFAULT_ADDR        = ":8080"
	DEFAULT_DATE_LAYOUT = "Jan 2, 2006"
)

type Flags struct {
	Addr string
	// DataPath is a yaml or json dataset file, empty serves the built in sample.
	DataPath string
	// DateLayout is the Go time layout of the tooltip date.
	DateLayout string
	// LogFile enables a rotating log file instead of stderr.
	LogFile string
}

type ExportFlags struct {
	// Dir writes the chart as svg and png into this directory and exits, instead of serving it.
	Dir string
}

func GetFlags() (*Flags, *ExportFlags) {
	flags, export, err := ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("couldn't parse flags: %v", err)
	}
	return flags, export
}

func ParseFlags(args []string) (*Flags, *ExportFlags, error) {
	set := flag.NewFlagSet("linechart", flag.ContinueOnError)

	flags := &Flags{}
	set.StringVar(&flags.Addr, "addr", DEFAULT_ADDR, "http listen address")
	set.StringVar(&flags.DataPath, "data", "", "dataset file (yaml, json or sqlite), empty for the sample dataset")
	set.StringVar(&flags.DateLayout, "date-format", DEFAULT_DATE_LAYOUT, "Go time layout for tooltip dates")
	set.StringVar(&flags.LogFile, "log-file", "", "write logs to this file with rotation instead of stderr")

	export := &ExportFlags{}
	set.StringVar(&export.Dir, "export-dir", "", "write chart svg and png to this directory and exit")

	if err := set.Parse(args); err != nil {
		return nil, nil, err
	}
	return flags, export, nil
}
