package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bigcalc runs a single operation against one or two hexadecimal operands and
// prints the result. It exists mostly to poke at bignum from the shell when a
// fuzz failure needs reproducing by hand.

const longUsage = `Arbitrary-precision integer calculator.

Operands are hexadecimal with an optional leading '-', no '0x' prefix.
Results are printed in the base given by --base (default 10).

Negative operands look like flags to the parser, so put them after '--':

  bigcalc add -- -5 3`

type calc struct {
	base     int
	dump     bool
	verbose  bool
	rem      bool
	positive bool
	seed     int64

	log *zap.Logger
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := newRootCmd(&calc{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(c *calc) *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		Long:          longUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&c.base, "base", 10, "Output base, 2 to 36")
	flags.BoolVar(&c.dump, "dump", false, "Dump the internal representation of each result")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log each operation")

	divCmd := c.binaryCmd("div", "Divide A by B", c.div)
	divCmd.Flags().BoolVar(&c.rem, "rem", false, "Also print the remainder")

	randCmd := c.randCmd()
	randCmd.Flags().BoolVar(&c.positive, "positive", false, "Never produce a negative number")
	randCmd.Flags().Int64Var(&c.seed, "seed", 0, "Seed for a reproducible result (0 uses the process source)")

	root.AddCommand(
		c.binaryCmd("cmp", "Compare A with B", c.cmp),
		c.binaryCmd("add", "Add A and B", c.add),
		c.binaryCmd("sub", "Subtract B from A", c.sub),
		c.binaryCmd("mul", "Multiply A by B", c.mul),
		divCmd,
		c.binaryCmd("mod", "Remainder of A divided by |B|", c.mod),
		c.shiftCmd("lsh", "Shift A left by N bits (default 1)", opLsh),
		c.shiftCmd("rsh", "Shift the magnitude of A right by N bits (default 1)", opRsh),
		c.infoCmd(),
		randCmd,
	)

	return root
}

// initLogger leaves an already configured logger alone so tests can swap in
// a nop.
func (c *calc) initLogger() error {
	if c.log != nil {
		return nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.verbose {
		config = zap.NewDevelopmentConfig()
	}

	log, err := config.Build()
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	c.log = log
	return nil
}
