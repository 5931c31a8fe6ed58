package executor

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Handler simulates an emulator binary in tests. It receives the full argv
// and the stdio streams and returns an exit code.
type Handler func(argv []string, stdin io.Reader, stdout, stderr io.Writer) int

// Fake is an Executor that runs registered handlers in-process and records
// every argv it spawned.
type Fake struct {
	mu       sync.Mutex
	handlers map[string]Handler
	started  [][]string
}

// NewFake creates a Fake with no registered commands.
func NewFake() *Fake {
	return &Fake{handlers: make(map[string]Handler)}
}

// Register installs a handler for the command whose argv[0] equals name.
func (f *Fake) Register(name string, h Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[name] = h
}

// Started returns a copy of every argv successfully spawned so far.
func (f *Fake) Started() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.started))
	for i, argv := range f.started {
		out[i] = append([]string(nil), argv...)
	}
	return out
}

type fakeProcess struct {
	done chan struct{}
	code int
}

func (p *fakeProcess) Wait() (int, error) {
	<-p.done
	return p.code, nil
}

func (f *Fake) spawn(argv []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	f.mu.Lock()
	h, ok := f.handlers[argv[0]]
	if ok {
		f.started = append(f.started, append([]string(nil), argv...))
	}
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("executable %q not found", argv[0])
	}

	p := &fakeProcess{done: make(chan struct{})}
	go func() {
		p.code = h(argv, stdin, stdout, stderr)
		close(p.done)
	}()
	return p, nil
}

// Start implements Executor.
func (f *Fake) Start(argv []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error) {
	return f.spawn(argv, stdin, stdout, stderr)
}

// StartPTY implements Executor. The slave file stands in for all three
// streams, as it would on a real PTY.
func (f *Fake) StartPTY(argv []string, slave *os.File) (Process, error) {
	return f.spawn(argv, slave, slave, slave)
}
