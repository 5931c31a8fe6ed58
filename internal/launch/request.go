// Package launch turns a raw mnfnss invocation into a sanitized emulator
// launch request.
package launch

import (
	"fmt"
	"os"
	"path/filepath"
)

// FactoryName is the fixed key under which the generated launch descriptor
// binds its topology factory. The supervisor passes the same name to the
// emulator's topology selector, so the two must never diverge.
const FactoryName = "fnss"

// Outcome is what the classifier decided the invocation asks for.
type Outcome int

const (
	// Run means spawn the emulator console.
	Run Outcome = iota
	// Help means print the usage text and exit zero.
	Help
	// Version means print the version string and exit zero.
	Version
)

// Request is a classified Run invocation: which topology file to load,
// whether to relabel its nodes, and everything that gets forwarded to the
// emulator untouched.
type Request struct {
	TopologyPath string   // absolute path to an existing topology file
	Relabel      bool     // relabel node names to host/switch conventions
	Passthrough  []string // emulator arguments, order preserved
}

// UsageError reports an invocation the classifier rejected. The caller
// prints it together with the usage text and exits nonzero; no child
// process is spawned.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

const noRelabelFlag = "--no-relabel"

// Classify inspects argv (program name excluded). The last token decides
// the outcome: a help or version flag short-circuits, anything else must
// name an existing topology file. The preceding tokens are scanned for
// --no-relabel, which is stripped rather than forwarded; everything else
// passes through in order.
//
// A --no-relabel in final position is deliberately treated as the topology
// path candidate and fails the existence check: the usage line documents
// the topology file as the last argument, and the contract is positional.
func Classify(args []string) (Outcome, *Request, error) {
	if len(args) < 1 {
		return Run, nil, &UsageError{Msg: "missing topology file argument"}
	}

	last := args[len(args)-1]
	switch last {
	case "-h", "--help":
		return Help, nil, nil
	case "-v", "--version":
		return Version, nil, nil
	}

	info, err := os.Stat(last)
	if err != nil {
		return Run, nil, &UsageError{Msg: fmt.Sprintf("topology file %s does not exist", last)}
	}
	if !info.Mode().IsRegular() {
		return Run, nil, &UsageError{Msg: fmt.Sprintf("topology file %s is not a regular file", last)}
	}

	// The descriptor may be loaded from a different working directory, so
	// the embedded path must be absolute.
	abs, err := filepath.Abs(last)
	if err != nil {
		return Run, nil, fmt.Errorf("resolving %s: %w", last, err)
	}

	req := &Request{TopologyPath: abs, Relabel: true}
	for _, tok := range args[:len(args)-1] {
		if tok == noRelabelFlag {
			req.Relabel = false
			continue
		}
		req.Passthrough = append(req.Passthrough, tok)
	}
	return Run, req, nil
}
