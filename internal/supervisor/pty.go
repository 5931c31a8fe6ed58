package supervisor

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/mbrock/mnfnss/internal/executor"
)

// runPTY runs the console as a session leader on a fresh pseudo-terminal
// and mirrors bytes between it and the local terminal. With the local
// terminal in raw mode, Ctrl+C and friends travel as literal bytes and the
// PTY line discipline raises the signal in the console's session, never
// here — the same transparency the plain stdio path gets from the
// foreground process group.
func runPTY(exe executor.Executor, argv []string) (int, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return 0, fmt.Errorf("allocating pty: %w", err)
	}
	defer master.Close()

	stdinFd := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFd) {
		if ws, err := pty.GetsizeFull(os.Stdin); err == nil {
			pty.Setsize(master, ws)
		}
		oldState, err := term.MakeRaw(stdinFd)
		if err != nil {
			slave.Close()
			return 0, fmt.Errorf("setting raw mode: %w", err)
		}
		defer term.Restore(stdinFd, oldState)
	}

	proc, err := exe.StartPTY(argv, slave)
	slave.Close()
	if err != nil {
		return 0, fmt.Errorf("starting %s on pty: %w", argv[0], err)
	}

	// Keep the console's notion of the window in step with the local one.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, unix.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			if ws, err := pty.GetsizeFull(os.Stdin); err == nil {
				pty.Setsize(master, ws)
			}
		}
	}()

	go func() { io.Copy(master, os.Stdin) }()
	go func() { io.Copy(os.Stdout, master) }()

	code, err := proc.Wait()
	if err != nil {
		return 0, fmt.Errorf("waiting for %s: %w", argv[0], err)
	}
	return code, nil
}
