package executor

import (
	"io"
	"strings"
	"testing"
)

func TestFake_RecordsStartedArgv(t *testing.T) {
	fake := NewFake()
	fake.Register("mn", func(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
		return 0
	})

	proc, err := fake.Start([]string{"mn", "--mac"}, strings.NewReader(""), io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if code, _ := proc.Wait(); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	started := fake.Started()
	if len(started) != 1 {
		t.Fatalf("Started() has %d entries, want 1", len(started))
	}
	if started[0][0] != "mn" || started[0][1] != "--mac" {
		t.Errorf("recorded argv = %v", started[0])
	}
}

func TestFake_UnknownBinary(t *testing.T) {
	fake := NewFake()
	if _, err := fake.Start([]string{"mn"}, strings.NewReader(""), io.Discard, io.Discard); err == nil {
		t.Fatal("expected error for unregistered binary")
	}
	if len(fake.Started()) != 0 {
		t.Error("failed spawn must not be recorded")
	}
}

func TestFake_ExitCode(t *testing.T) {
	fake := NewFake()
	fake.Register("mn", func(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
		return 42
	})

	proc, err := fake.Start([]string{"mn"}, strings.NewReader(""), io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if code, _ := proc.Wait(); code != 42 {
		t.Errorf("exit code = %d, want 42", code)
	}
}
