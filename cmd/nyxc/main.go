package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/nyx/cmds"
	"github.com/reusee/nyx/modes"
	"github.com/reusee/nyx/nyxc"
	"github.com/reusee/nyx/reports"
)

var (
	inputFlag   = cmds.Var[string]("-in")
	outputFlag  = cmds.Var[string]("-o")
	emitFlag    = cmds.Var[string]("-emit")
	inspectFlag = cmds.Var[string]("-inspect")
	tapFlag     = cmds.Switch("-tap")
	replFlag    = cmds.Switch("-repl")
	timingsFlag = cmds.Switch("-timings")
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			return nyxc.ExitOK
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cmds.PrintUsage()
		return nyxc.ExitFailure
	}

	emit, err := nyxc.ParseEmit(*emitFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nyxc.ExitFailure
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(nyxc.Module),
		modes.ForProduction(),
	)

	code := nyxc.ExitOK
	scope.Call(func(
		runCompile nyxc.Run,
		repl nyxc.REPL,
		write nyxc.WriteOutputs,
		report reports.Report,
	) {
		if *replFlag {
			if err := repl(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				code = nyxc.ExitFailure
			}
			return
		}

		result, err := runCompile(ctx, nyxc.Request{
			Input:   *inputFlag,
			Emit:    emit,
			Inspect: *inspectFlag,
			Tap:     *tapFlag,
		})
		if *timingsFlag {
			defer nyxc.PrintTimings(os.Stderr, result.Stages)
		}
		if err != nil {
			code = nyxc.ExitCode(err)
			if code == nyxc.ExitDiagnostics {
				report(result.Source, err)
			} else {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
			return
		}

		if err := write(result, *outputFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			code = nyxc.ExitFailure
		}
	})

	return code
}
