// Package executor abstracts how the emulator child process is started, so
// the supervisor can be exercised without a real console binary.
package executor

import (
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Process is a spawned emulator console.
type Process interface {
	// Wait blocks until the process exits. The returned code follows shell
	// conventions: the child's exit status, or 128+signal when the child
	// died to a signal.
	Wait() (int, error)
}

// Executor spawns emulator processes.
type Executor interface {
	// Start runs argv with the given stdio streams.
	Start(argv []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error)

	// StartPTY runs argv as a session leader with slave as its
	// controlling terminal, used for stdin, stdout and stderr.
	StartPTY(argv []string, slave *os.File) (Process, error)
}

// System returns the Executor backed by os/exec.
func System() Executor { return systemExecutor{} }

type systemExecutor struct{}

type systemProcess struct {
	cmd *exec.Cmd
}

func (p *systemProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return 1, err
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}

func (systemExecutor) Start(argv []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &systemProcess{cmd: cmd}, nil
}

func (systemExecutor) StartPTY(argv []string, slave *os.File) (Process, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &systemProcess{cmd: cmd}, nil
}
