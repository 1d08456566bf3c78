package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eth2030/sszcodec/blockcodec"
	"github.com/eth2030/sszcodec/consensus"
)

func runCmd(t *testing.T, stdin []byte, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, bytes.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func encodedBlock(t *testing.T) []byte {
	t.Helper()
	blk := &consensus.SignedBeaconBlock{Message: consensus.BeaconBlock{Slot: 7, ProposerIndex: 3}}
	enc, err := blk.MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	return enc
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, exit, code := parseFlags(nil, &bytes.Buffer{}, &bytes.Buffer{})
	if exit {
		t.Fatalf("unexpected exit with code %d", code)
	}
	if opts.typeName != "SignedBeaconBlock" || opts.from != blockcodec.SSZ || opts.to != blockcodec.JSON {
		t.Fatalf("defaults = %+v", opts)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := [][]string{
		{"-from", "rlp"},
		{"-nosuchflag"},
		{"extra-arg"},
	}
	for _, args := range tests {
		if _, exit, code := parseFlags(args, &bytes.Buffer{}, &bytes.Buffer{}); !exit || code != 2 {
			t.Errorf("%v: exit=%v code=%d, want exit with 2", args, exit, code)
		}
	}
}

func TestVersionAndTypes(t *testing.T) {
	code, out, _ := runCmd(t, nil, "-version")
	if code != 0 || !strings.HasPrefix(out, "sszcodec "+version) {
		t.Fatalf("-version: code %d, out %q", code, out)
	}
	code, out, _ = runCmd(t, nil, "-types")
	if code != 0 {
		t.Fatalf("-types: code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(transcoders) || lines[0] != "Attestation" {
		t.Fatalf("-types listed %v", lines)
	}
}

func TestTranscodeRoundTrip(t *testing.T) {
	enc := encodedBlock(t)
	code, text, stderr := runCmd(t, enc, "-to", "yaml")
	if code != 0 {
		t.Fatalf("ssz -> yaml: code %d: %s", code, stderr)
	}
	if !strings.Contains(text, "proposer_index: \"3\"") {
		t.Fatalf("yaml output:\n%s", text)
	}
	code, back, stderr := runCmd(t, []byte(text), "-from", "yaml", "-to", "ssz")
	if code != 0 {
		t.Fatalf("yaml -> ssz: code %d: %s", code, stderr)
	}
	if !bytes.Equal([]byte(back), enc) {
		t.Fatal("round trip changed the encoding")
	}
}

func TestHexAndFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "block.hex")
	out := filepath.Join(dir, "block.cbor")
	enc := encodedBlock(t)
	if err := os.WriteFile(in, []byte(hexutil.Encode(enc)+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if code, _, stderr := runCmd(t, nil, "-hex", "-in", in, "-to", "cbor", "-out", out); code != 0 {
		t.Fatalf("hex -> cbor: code %d: %s", code, stderr)
	}
	code, hexOut, stderr := runCmd(t, nil, "-in", out, "-from", "cbor", "-to", "ssz", "-hex")
	if code != 0 {
		t.Fatalf("cbor -> hex: code %d: %s", code, stderr)
	}
	if strings.TrimSpace(hexOut) != hexutil.Encode(enc) {
		t.Fatalf("hex output = %s", hexOut)
	}
}

func TestRejectedInput(t *testing.T) {
	enc := encodedBlock(t)
	code, _, stderr := runCmd(t, enc[:len(enc)-1], "-metrics", "-log.level", "warn")
	if code != 1 {
		t.Fatalf("truncated input: code %d, want 1", code)
	}
	for _, want := range []string{`"msg":"decode rejected"`, "sszcodec_ssz_decode_errors_", "Error: "} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codec.yaml")
	if err := os.WriteFile(path, []byte("max_block_bytes: 64\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCmd(t, encodedBlock(t), "-config", path)
	if code != 1 || !strings.Contains(stderr, "exceeds size limit") {
		t.Fatalf("oversized input: code %d: %s", code, stderr)
	}
	if code, _, _ := runCmd(t, nil, "-config", filepath.Join(t.TempDir(), "none.yaml")); code != 1 {
		t.Fatalf("missing config: code %d, want 1", code)
	}
	if code, _, _ := runCmd(t, nil, "-type", "Nope"); code != 2 {
		t.Fatalf("unknown type: code %d, want 2", code)
	}
}

// zeros is an endless input that records how much was read from it.
type zeros struct{ n int }

func (z *zeros) Read(p []byte) (int, error) {
	clear(p)
	z.n += len(p)
	return len(p), nil
}

func TestInputLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codec.yaml")
	if err := os.WriteFile(path, []byte("max_block_bytes: 64\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		args  []string
		bound int
	}{
		{"binary", []string{"-config", path}, 65},
		{"hex", []string{"-config", path, "-hex"}, 2*64 + 2 + hexSlack + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &zeros{}
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, in, &stdout, &stderr); code != 1 {
				t.Fatalf("code %d, want 1: %s", code, stderr.String())
			}
			if !strings.Contains(stderr.String(), "exceeds size limit") {
				t.Fatalf("stderr = %s", stderr.String())
			}
			if in.n > tt.bound {
				t.Fatalf("read %d bytes of an endless input, want at most %d", in.n, tt.bound)
			}
		})
	}

	// Input within the limit still reaches the decoder.
	blk, err := (&consensus.Checkpoint{Epoch: 9}).MarshalSSZ()
	if err != nil {
		t.Fatalf("MarshalSSZ: %v", err)
	}
	code, out, stderr := runCmd(t, blk, "-config", path, "-type", "Checkpoint")
	if code != 0 || !strings.Contains(out, `"epoch":"9"`) {
		t.Fatalf("40-byte checkpoint: code %d out %s: %s", code, out, stderr)
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestMetricsWriteError(t *testing.T) {
	var stdout bytes.Buffer
	code := run([]string{"-metrics", "-log.level", "error"}, bytes.NewReader(encodedBlock(t)), &stdout, failWriter{})
	if code != 1 {
		t.Fatalf("code %d, want 1 when metrics cannot be written", code)
	}
	if stdout.Len() == 0 {
		t.Fatal("conversion output missing")
	}
}
