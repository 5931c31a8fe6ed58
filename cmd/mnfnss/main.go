// mnfnss - launch an emulation console from an FNSS topology file
//
// Usage:
//
//	mnfnss [emulator options] [--no-relabel] <topology-file>
//
// The topology file must be the last argument. Everything except
// --no-relabel is forwarded to the emulator console untouched, with
// "--link tc" injected when no --link option is given so the topology's
// link attributes take effect.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/mbrock/mnfnss/internal/config"
	"github.com/mbrock/mnfnss/internal/descriptor"
	"github.com/mbrock/mnfnss/internal/dirs"
	"github.com/mbrock/mnfnss/internal/executor"
	"github.com/mbrock/mnfnss/internal/launch"
	"github.com/mbrock/mnfnss/internal/supervisor"
)

const version = "0.4.0"

func main() {
	os.Exit(run(os.Args[1:], executor.System()))
}

func run(args []string, exe executor.Executor) int {
	outcome, req, err := launch.Classify(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mnfnss: %v\n", err)
		var ue *launch.UsageError
		if errors.As(err, &ue) {
			usage(os.Stderr)
		}
		return 1
	}

	switch outcome {
	case launch.Help:
		usage(os.Stdout)
		return 0
	case launch.Version:
		fmt.Println("mnfnss " + version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mnfnss: %v\n", err)
		return 1
	}
	initLog(cfg.LogLevel)

	runDir, err := dirs.Ensure(cfg.RuntimeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mnfnss: creating runtime directory: %v\n", err)
		return 1
	}

	descPath, err := descriptor.Write(runDir, launch.FactoryName, descriptor.Factory{
		Topology: req.TopologyPath,
		Relabel:  req.Relabel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mnfnss: %v\n", err)
		return 1
	}
	log.WithField("descriptor", descPath).Debug("launch descriptor written")

	code, err := supervisor.Run(supervisor.Options{
		Emulator:       cfg.Emulator,
		DescriptorPath: descPath,
		FactoryName:    launch.FactoryName,
		Args:           launch.EnsureLinkBackend(req.Passthrough),
		PTY:            cfg.PTY,
		Exec:           exe,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mnfnss: %v\n", err)
		return 1
	}
	return code
}

func initLog(level string) {
	log.SetHandler(cli.New(os.Stderr))
	if lvl, err := log.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `mnfnss - launch an emulation console from an FNSS topology file

Usage:
  mnfnss [emulator options] [--no-relabel] <topology-file>

The topology file must be the last argument and must exist. All emulator
options are forwarded untouched, except that "--link tc" is added when no
--link option is given, so that the capacity, delay and queue-size
attributes in the topology file take effect. Passing your own --link
disables that injection entirely.

Options handled by mnfnss itself:
  --no-relabel   keep node names from the topology file instead of
                 relabeling them to host/switch conventions
  -h, --help     show this help (last argument only)
  -v, --version  print version (last argument only)

Environment:
  MNFNSS_MN           emulator binary to launch (default "mn")
  MNFNSS_RUNTIME_DIR  where launch descriptors are written
  MNFNSS_PTY          bridge the console through a pseudo-terminal
  MNFNSS_LOG          log level: debug, info, warn, error (default "warn")
`)
}
