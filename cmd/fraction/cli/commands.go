package cli

import (
	"fmt"

	"github.com/govalues/fraction"
	"github.com/spf13/cobra"
)

type parseResult struct {
	Input    string            `json:"input"`
	Fraction fraction.Fraction `json:"fraction"`
	Num      string            `json:"num"`
	Denom    string            `json:"denom"`
	Float    float64           `json:"float"`
	Exact    bool              `json:"exact"`
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <x>",
		Short: "Print the canonical form of a fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.operand(args[0])
			if err != nil {
				return err
			}
			x, exact := f.Float64()
			res := parseResult{
				Input:    args[0],
				Fraction: f,
				Num:      f.Num().String(),
				Denom:    f.Denom().String(),
				Float:    x,
				Exact:    exact,
			}
			text := fmt.Sprintf("%v\nnum: %v\ndenom: %v\nfloat: %v", f, res.Num, res.Denom, x)
			return a.print(cmd.OutOrStdout(), res, text)
		},
	}
}

type evalResult struct {
	X      fraction.Fraction `json:"x"`
	Op     string            `json:"op"`
	Y      fraction.Fraction `json:"y"`
	Result fraction.Fraction `json:"result"`
	Fixed  string            `json:"fixed"`
}

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Evaluate an arithmetic expression, op is one of +, -, *, x, /",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			y, err := a.operand(args[2])
			if err != nil {
				return err
			}
			z, err := evaluate(x, args[1], y)
			if err != nil {
				return err
			}
			fixed, err := z.Fixed(a.cfg.Scale, a.cfg.Mode)
			if err != nil {
				return err
			}
			a.log.Debugw("expression evaluated", "x", x.String(), "op", args[1], "y", y.String(), "result", z.String())
			res := evalResult{
				X:      x,
				Op:     args[1],
				Y:      y,
				Result: z,
				Fixed:  fixed,
			}
			return a.print(cmd.OutOrStdout(), res, z.String())
		},
	}
}

// evaluate applies a binary operator to fractions.
func evaluate(x fraction.Fraction, op string, y fraction.Fraction) (fraction.Fraction, error) {
	switch op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*", "x":
		return x.Mul(y)
	case "/":
		return x.Quo(y)
	}
	return fraction.Fraction{}, fmt.Errorf("unknown operator %q", op)
}

type cmpResult struct {
	X   fraction.Fraction `json:"x"`
	Y   fraction.Fraction `json:"y"`
	Cmp int               `json:"cmp"`
}

func (a *app) cmpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Compare fractions, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}
			y, err := a.operand(args[1])
			if err != nil {
				return err
			}
			res := cmpResult{X: x, Y: y, Cmp: x.Cmp(y)}
			return a.print(cmd.OutOrStdout(), res, fmt.Sprint(res.Cmp))
		},
	}
}

type fixedResult struct {
	Input string                `json:"input"`
	Scale int                   `json:"scale"`
	Mode  fraction.RoundingMode `json:"mode"`
	Fixed string                `json:"fixed"`
}

func (a *app) fixedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed <x>",
		Short: "Print a fraction with a fixed number of digits after the decimal point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.operand(args[0])
			if err != nil {
				return err
			}
			s, err := f.Fixed(a.cfg.Scale, a.cfg.Mode)
			if err != nil {
				return err
			}
			res := fixedResult{
				Input: args[0],
				Scale: a.cfg.Scale,
				Mode:  a.cfg.Mode,
				Fixed: s,
			}
			return a.print(cmd.OutOrStdout(), res, s)
		},
	}
}
