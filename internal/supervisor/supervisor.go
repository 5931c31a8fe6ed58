// Package supervisor owns the emulator child process: signal setup, spawn,
// wait, and descriptor cleanup.
package supervisor

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/apex/log"

	"github.com/mbrock/mnfnss/internal/executor"
)

// Options configure a single supervised launch.
type Options struct {
	Emulator       string   // console binary, e.g. "mn"
	DescriptorPath string   // generated launch descriptor, removed on return
	FactoryName    string   // factory key the emulator should load
	Args           []string // policy-enforced pass-through arguments
	PTY            bool     // bridge the console through a pseudo-terminal
	Exec           executor.Executor
}

// Run spawns the emulator console and blocks until it exits, returning the
// child's exit code verbatim. The launch descriptor is removed on every
// path out of Run, including spawn failures.
//
// Before spawning, Run catches termination-class signals into a channel
// nothing reads — a no-op handler, not SIG_IGN, because an ignored
// disposition is inherited across exec and would deafen the console too,
// while a caught one resets to the default in the child. The console runs
// in the foreground and receives these signals directly from the terminal;
// swallowing them here means an operator's Ctrl+C reaches only the console,
// and the orchestrator survives to wait and clean up. No other package may
// install handlers for these signals.
func Run(opts Options) (code int, err error) {
	defer func() {
		if rerr := os.Remove(opts.DescriptorPath); rerr != nil && !os.IsNotExist(rerr) {
			log.WithError(rerr).Warn("removing launch descriptor")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	argv := make([]string, 0, 5+len(opts.Args))
	argv = append(argv, opts.Emulator, "--custom", opts.DescriptorPath, "--topo", opts.FactoryName)
	argv = append(argv, opts.Args...)
	log.WithField("argv", strings.Join(argv, " ")).Debug("launching emulator console")

	if opts.PTY {
		code, err = runPTY(opts.Exec, argv)
	} else {
		code, err = run(opts.Exec, argv)
	}
	if err != nil {
		return 0, err
	}
	log.WithField("code", code).Debug("emulator console exited")
	return code, nil
}

func run(exe executor.Executor, argv []string) (int, error) {
	proc, err := exe.Start(argv, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return 0, fmt.Errorf("starting %s: %w", argv[0], err)
	}
	code, err := proc.Wait()
	if err != nil {
		return 0, fmt.Errorf("waiting for %s: %w", argv[0], err)
	}
	return code, nil
}
