package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/venkatsvpr/lrumap/internal/scenario"
)

type checkCommand struct {
	Backing backing `group:"Backing"`

	global *globalOptions
	out    io.Writer
}

func newCheckCommand(global *globalOptions) *checkCommand {
	return &checkCommand{
		global: global,
		out:    os.Stdout,
	}
}

func (x *checkCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"check",
		"Run the scripted correctness session",
		"Fill a cache of capacity 4, force an eviction, then check a "+
			"hit, a miss and an update, comparing the dump after "+
			"every step with the expected one",
		x,
	)
	return err
}

func (x *checkCommand) Execute(_ []string) error {
	if err := setupLogging(x.out, x.global.DebugLevel); err != nil {
		return err
	}

	c, err := x.Backing.newCache(scenario.BasicCapacity)
	if err != nil {
		return err
	}

	log.Infof("Checking %v cache", x.Backing)

	return scenario.Run(c, scenario.Basic(), func(r scenario.Result) {
		result := "pass"
		if !r.Pass() {
			result = "fail"
		}
		fmt.Fprintf(x.out, "result: %s\n", result)
		fmt.Fprintf(x.out, "  step:     %v\n", r.Step)
		fmt.Fprintf(x.out, "  actual:   [%s]\n", r.Actual)
		fmt.Fprintf(x.out, "  expected: [%s]\n", r.Step.Want)
		if r.Err != nil {
			fmt.Fprintf(x.out, "  error:    %v\n", r.Err)
		}
	})
}
