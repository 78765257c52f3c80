package cli

import (
	"strings"

	"github.com/govalues/fraction"
	"github.com/spf13/pflag"
)

// modeValue adapts fraction.RoundingMode to a command-line flag.
type modeValue fraction.RoundingMode

var _ pflag.Value = (*modeValue)(nil)

func newModeValue(val fraction.RoundingMode, p *fraction.RoundingMode) *modeValue {
	*p = val
	return (*modeValue)(p)
}

func (m *modeValue) Set(s string) error {
	v, err := fraction.ParseRoundingMode(s)
	if err != nil {
		return err
	}
	*m = modeValue(v)
	return nil
}

func (m *modeValue) String() string {
	return fraction.RoundingMode(*m).String()
}

func (m *modeValue) Type() string {
	return "mode"
}

// modeCodes lists the codes of all rounding modes for help texts.
func modeCodes() string {
	var codes []string
	for m := fraction.RoundingMode(0); m.IsValid(); m++ {
		codes = append(codes, m.String())
	}
	return strings.Join(codes, ", ")
}
