// Command sszcodec converts beacon-chain containers between SSZ and the
// JSON, YAML and CBOR structured forms.
//
// Usage:
//
//	sszcodec [flags] < input > output
//
// Flags:
//
//	--config     YAML config file (max_block_bytes, log_level, log_format)
//	--type       container type (default: SignedBeaconBlock)
//	--from       input encoding: ssz, json, yaml, cbor (default: ssz)
//	--to         output encoding (default: json)
//	--in, --out  input and output files (default: stdin, stdout)
//	--hex        read and write SSZ as 0x-prefixed hex
//	--metrics    print codec metrics to stderr on exit
//	--log.level  override the configured log level
//	--types      list container types and exit
//	--version    print version and exit
package main

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/sszcodec/blockcodec"
	"github.com/eth2030/sszcodec/consensus"
	"github.com/eth2030/sszcodec/log"
	"github.com/eth2030/sszcodec/metrics"
	"github.com/eth2030/sszcodec/ssz"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

// hexSlack is the whitespace allowed around hex input.
const hexSlack = 64

type transcoder func(c *blockcodec.Codec, data []byte, from, to blockcodec.Encoding) ([]byte, error)

func transcoderOf[T any, PT interface {
	*T
	ssz.Object
}]() transcoder {
	return blockcodec.Transcode[T, PT]
}

var transcoders = map[string]transcoder{
	"Attestation":             transcoderOf[consensus.Attestation](),
	"AttestationData":         transcoderOf[consensus.AttestationData](),
	"AttesterSlashing":        transcoderOf[consensus.AttesterSlashing](),
	"BeaconBlock":             transcoderOf[consensus.BeaconBlock](),
	"BeaconBlockBody":         transcoderOf[consensus.BeaconBlockBody](),
	"BeaconBlockHeader":       transcoderOf[consensus.BeaconBlockHeader](),
	"Checkpoint":              transcoderOf[consensus.Checkpoint](),
	"Deposit":                 transcoderOf[consensus.Deposit](),
	"DepositData":             transcoderOf[consensus.DepositData](),
	"Eth1Data":                transcoderOf[consensus.Eth1Data](),
	"IndexedAttestation":      transcoderOf[consensus.IndexedAttestation](),
	"ProposerSlashing":        transcoderOf[consensus.ProposerSlashing](),
	"SignedBeaconBlock":       transcoderOf[consensus.SignedBeaconBlock](),
	"SignedBeaconBlockHeader": transcoderOf[consensus.SignedBeaconBlockHeader](),
	"SignedVoluntaryExit":     transcoderOf[consensus.SignedVoluntaryExit](),
	"VoluntaryExit":           transcoderOf[consensus.VoluntaryExit](),
}

func typeNames() []string {
	return slices.Sorted(maps.Keys(transcoders))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (status int) {
	opts, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}
	convert, ok := transcoders[opts.typeName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown type %q (see -types)\n", opts.typeName)
		return 2
	}

	cfg := blockcodec.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = blockcodec.LoadConfig(opts.configFile); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	format, _ := log.ParseFormat(cfg.LogFormat)
	logger := log.New(stderr, level, format)

	reg := metrics.NewRegistry()
	codec, err := blockcodec.New(cfg, logger, reg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.metrics {
		defer func() {
			if err := reg.WriteText(stderr, "sszcodec"); err != nil {
				fmt.Fprintf(stderr, "Error: write metrics: %v\n", err)
				if status == 0 {
					status = 1
				}
			}
		}()
	}

	input, err := readInput(opts, stdin, cfg.MaxBlockBytes)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	out, err := convert(codec, input, opts.from, opts.to)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.hex && opts.to == blockcodec.SSZ {
		out = append([]byte(hexutil.Encode(out)), '\n')
	}
	if err := writeOutput(opts, stdout, out); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// readInput reads at most enough bytes to hold a limit-sized input, so an
// oversized stream fails without being buffered whole.
func readInput(opts options, stdin io.Reader, limit int) ([]byte, error) {
	hexIn := opts.hex && opts.from == blockcodec.SSZ
	bound := int64(limit)
	if hexIn {
		// 0x prefix, two digits per byte and some surrounding whitespace.
		bound = 2*bound + 2 + hexSlack
	}
	r := stdin
	if opts.inFile != "" {
		f, err := os.Open(opts.inFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, bound+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > bound {
		return nil, fmt.Errorf("%w: more than %d input bytes", blockcodec.ErrTooLarge, bound)
	}
	if hexIn {
		return hexutil.Decode(string(bytes.TrimSpace(data)))
	}
	return data, nil
}

func writeOutput(opts options, stdout io.Writer, out []byte) error {
	if opts.outFile != "" {
		return os.WriteFile(opts.outFile, out, 0o644)
	}
	_, err := stdout.Write(out)
	return err
}
