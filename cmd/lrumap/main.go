package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type globalOptions struct {
	DebugLevel string `long:"debuglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

type subCommand interface {
	Register(parser *flags.Parser) error
}

func main() {
	opts := &globalOptions{}
	parser := flags.NewParser(opts, flags.Default)

	commands := []subCommand{
		newCheckCommand(opts),
		newBenchCommand(opts),
	}
	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			fmt.Fprintf(os.Stderr, "unable to register command: %v\n",
				err)
			os.Exit(1)
		}
	}

	// The parser prints its own and the commands' errors.
	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
