package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type binaryOp func(w io.Writer, a, b bignum.Int) error

type shiftOp func(x bignum.Int, n uint) bignum.Int

var (
	opLsh shiftOp = bignum.Int.Lsh
	opRsh shiftOp = bignum.Int.Rsh
)

func (c *calc) binaryCmd(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			c.log.Debug("binary op",
				zap.String("op", name),
				zap.Stringer("a", ops[0]),
				zap.Stringer("b", ops[1]))

			return op(cmd.OutOrStdout(), ops[0], ops[1])
		},
	}
}

func (c *calc) shiftCmd(name, short string, op shiftOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A [N]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args[:1])
			if err != nil {
				return err
			}

			n := uint64(1)
			if len(args) > 1 {
				n, err = strconv.ParseUint(args[1], 10, 32)
				if err != nil {
					return errors.Wrapf(err, "shift count %q", args[1])
				}
			}
			c.log.Debug("shift op",
				zap.String("op", name),
				zap.Stringer("a", ops[0]),
				zap.Uint64("n", n))

			return c.print(cmd.OutOrStdout(), op(ops[0], uint(n)))
		},
	}
}

func (c *calc) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info A...",
		Short: "Show the size of each operand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, x := range ops {
				digits := uint(1)
				if !x.IsZero() {
					l, err := x.Log(10)
					if err != nil {
						return errors.Wrapf(err, "operand %d", i+1)
					}
					digits = uint(l) + 1
				}
				if _, err := fmt.Fprintf(w, "%s: %d bits used, %d bits allocated, %d decimal digits\n",
					args[i], x.BitsUsed(), x.BitsAllocated(), digits); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *calc) randCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand BITS",
		Short: "Generate a random number of up to BITS bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return errors.Wrapf(err, "bit count %q", args[0])
			}

			var v bignum.Int
			if c.seed != 0 {
				v = bignum.RandFrom(rand.New(rand.NewSource(c.seed)), uint(bits), c.positive)
			} else {
				v = bignum.Rand(uint(bits), c.positive)
			}
			c.log.Debug("rand",
				zap.Uint64("bits", bits),
				zap.Bool("positive", c.positive),
				zap.Int64("seed", c.seed))

			return c.print(cmd.OutOrStdout(), v)
		},
	}
}

func (c *calc) cmp(w io.Writer, a, b bignum.Int) error {
	verdict := "equal"
	switch a.Cmp(b) {
	case -1:
		verdict = "less"
	case 1:
		verdict = "greater"
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}

func (c *calc) add(w io.Writer, a, b bignum.Int) error { return c.print(w, a.Add(b)) }
func (c *calc) sub(w io.Writer, a, b bignum.Int) error { return c.print(w, a.Sub(b)) }
func (c *calc) mul(w io.Writer, a, b bignum.Int) error { return c.print(w, a.Mul(b)) }

func (c *calc) div(w io.Writer, a, b bignum.Int) error {
	q, r, err := a.QuoRem(b)
	if err != nil {
		return errors.Wrapf(err, "%s / %s", a, b)
	}
	if err := c.print(w, q); err != nil {
		return err
	}
	if c.rem {
		return c.print(w, r)
	}
	return nil
}

func (c *calc) mod(w io.Writer, a, b bignum.Int) error {
	r, err := a.Rem(b)
	if err != nil {
		return errors.Wrapf(err, "%s %% %s", a, b)
	}
	return c.print(w, r)
}

func (c *calc) print(w io.Writer, v bignum.Int) error {
	s, err := v.Text(c.base)
	if err != nil {
		return errors.Wrap(err, "--base")
	}
	if _, err := fmt.Fprintln(w, s); err != nil {
		return err
	}
	if c.dump {
		_, err = io.WriteString(w, spew.Sdump(v))
	}
	return err
}

func parseOperands(args []string) ([]bignum.Int, error) {
	out := make([]bignum.Int, len(args))
	for i, s := range args {
		v, err := bignum.FromHex(s)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}
