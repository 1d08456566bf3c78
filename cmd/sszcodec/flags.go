package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/eth2030/sszcodec/blockcodec"
)

// options holds the parsed command line.
type options struct {
	configFile string
	typeName   string
	from       blockcodec.Encoding
	to         blockcodec.Encoding
	inFile     string
	outFile    string
	hex        bool
	metrics    bool
	logLevel   string
}

// encodingValue implements flag.Value for blockcodec.Encoding.
type encodingValue struct {
	p *blockcodec.Encoding
}

func (v encodingValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.String()
}

func (v encodingValue) Set(s string) error {
	e, err := blockcodec.ParseEncoding(s)
	if err != nil {
		return err
	}
	*v.p = e
	return nil
}

// parseFlags parses CLI arguments. It returns the options, whether the
// caller should exit immediately, and the exit code.
func parseFlags(args []string, stdout, stderr io.Writer) (options, bool, int) {
	opts := options{
		typeName: "SignedBeaconBlock",
		from:     blockcodec.SSZ,
		to:       blockcodec.JSON,
	}
	fs := flag.NewFlagSet("sszcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML config file")
	fs.StringVar(&opts.typeName, "type", opts.typeName, "container type")
	fs.Var(encodingValue{&opts.from}, "from", "input encoding (ssz, json, yaml, cbor)")
	fs.Var(encodingValue{&opts.to}, "to", "output encoding (ssz, json, yaml, cbor)")
	fs.StringVar(&opts.inFile, "in", "", "input file (default: stdin)")
	fs.StringVar(&opts.outFile, "out", "", "output file (default: stdout)")
	fs.BoolVar(&opts.hex, "hex", false, "read and write SSZ as 0x-prefixed hex")
	fs.BoolVar(&opts.metrics, "metrics", false, "print codec metrics to stderr on exit")
	fs.StringVar(&opts.logLevel, "log.level", "", "override the configured log level")
	showVersion := fs.Bool("version", false, "print version and exit")
	listTypes := fs.Bool("types", false, "list container types and exit")

	if err := fs.Parse(args); err != nil {
		return opts, true, 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return opts, true, 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "sszcodec %s (commit %s)\n", version, commit)
		return opts, true, 0
	}
	if *listTypes {
		for _, name := range typeNames() {
			fmt.Fprintln(stdout, name)
		}
		return opts, true, 0
	}
	return opts, false, 0
}
