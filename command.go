package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func reduceCmd(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("no fraction to reduce")
	}
	for _, s := range c.Args().Slice() {
		f, err := common.ParseFraction(s)
		if err != nil {
			return err
		}
		logger.Verbosef("reduce %s => %s", s, f)
		fmt.Fprintln(c.App.Writer, f.String())
	}
	return nil
}

func calcCmd(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("invalid calc arguments %v", c.Args().Slice())
	}
	a, err := common.ParseFraction(c.Args().Get(0))
	if err != nil {
		return err
	}
	op, rhs := c.Args().Get(1), c.Args().Get(2)
	out, err := evaluate(a, op, rhs)
	if err != nil {
		logger.Errorf("calc %s %s %s error %s", a, op, rhs, err)
		return err
	}
	logger.Verbosef("calc %s %s %s => %s", a, op, rhs, out)
	fmt.Fprintln(c.App.Writer, out)
	return nil
}

func evaluate(a common.Fraction, op, rhs string) (string, error) {
	switch op {
	case "<<", ">>", ">>>":
		k, err := strconv.ParseUint(rhs, 10, 8)
		if err != nil {
			return "", fmt.Errorf("invalid shift amount %s", rhs)
		}
		switch op {
		case "<<":
			return a.Shl(uint(k)).String(), nil
		case ">>>":
			return a.UnsignedShr(uint(k)).String(), nil
		}
		r, err := a.Shr(uint(k))
		return r.String(), err
	}

	b, err := common.ParseFraction(rhs)
	if err != nil {
		return "", err
	}
	var r common.Fraction
	switch op {
	case "+":
		r = a.Add(b)
	case "-":
		r = a.Sub(b)
	case "*", "x":
		r = a.Mul(b)
	case "/":
		r, err = a.Div(b)
	case "%":
		r, err = a.Mod(b)
	case "&":
		r, err = a.And(b)
	case "|":
		r, err = a.Or(b)
	case "^":
		r, err = a.Xor(b)
	case "min":
		r = a.Min(b)
	case "max":
		r = a.Max(b)
	case "cmp":
		return strconv.Itoa(a.Cmp(b)), nil
	case "divrem":
		quo, rem, err := a.DivRem(b)
		if err != nil {
			return "", err
		}
		return quo.String() + " " + rem.String(), nil
	default:
		return "", fmt.Errorf("unknown operator %s", op)
	}
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func inspectCmd(c *cli.Context) error {
	f, err := common.ParseFraction(c.Args().First())
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "fraction:\t%s\n", f)
	fmt.Fprintf(w, "numerator:\t%d\n", f.Numerator())
	fmt.Fprintf(w, "denominator:\t%d\n", f.Denominator())
	fmt.Fprintf(w, "sign:\t\t%d\n", f.Sign())
	fmt.Fprintf(w, "integer:\t%t\n", f.IsInteger())
	fmt.Fprintf(w, "even:\t\t%t\n", f.IsEven())
	fmt.Fprintf(w, "pow2:\t\t%t\n", f.IsPow2())
	fmt.Fprintf(w, "float:\t\t%v\n", f.Float64())
	fmt.Fprintf(w, "hash:\t\t%016x\n", f.Hash())
	return nil
}

func convertCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("invalid convert arguments %v", c.Args().Slice())
	}
	typ := c.Args().Get(0)
	f, err := common.ParseFraction(c.Args().Get(1))
	if err != nil {
		return err
	}
	if typ == "decimal" {
		places := customFromContext(c).Format.DecimalPlaces
		logger.Verbosef("convert %s to decimal with %d places", f, places)
		fmt.Fprintln(c.App.Writer, f.Decimal(places).String())
		return nil
	}
	kind, err := common.ParseKind(typ)
	if err != nil {
		return err
	}
	v, err := f.Convert(kind)
	if err != nil {
		return err
	}
	logger.Verbosef("convert %s to %s", f, kind)
	fmt.Fprintln(c.App.Writer, v)
	return nil
}

func encodeCmd(c *cli.Context) error {
	f, err := common.ParseFraction(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(common.MsgpackMarshalPanic(f)))
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var f common.Fraction
	err = common.MsgpackUnmarshal(raw, &f)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, f.String())
	return nil
}
