package lut

import (
	"errors"
	"slices"
	"strings"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
)

var ErrUnknownOp = errors.New(`lut: unknown operation`)

// ops maps operation names to constructors taking one parameter.
var ops = map[string]func(float64) Table{
	`identity`:   func(float64) Table { return Identity() },
	`multiply`:   Multiply,
	`invert`:     func(float64) Table { return Invert() },
	`threshold`:  func(v float64) Table { return Threshold(int(v)) },
	`brightness`: func(v float64) Table { return BrightnessContrast(1, v) },
	`contrast`:   func(v float64) Table { return BrightnessContrast(v, 128*(1-v)) },
	`gamma`:      Gamma,
}

// ByName builds the named stock table with parameter value.
func ByName(name string, value float64) (Table, error) {
	op, ok := ops[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Table{}, errorsx.Mark(ErrUnknownOp, `%q (want one of %s)`, name, strings.Join(Names(), `, `))
	}
	return op(value), nil
}

// Names lists the operations known to ByName.
func Names() []string {
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
