package notas

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// brNumber matches numbers written the Brazilian way: "." groups thousands and
// "," separates decimals, as in 1.234,56.
var brNumber = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// ParseNumber parses a number written in the pt-BR format.
func ParseNumber(s string) (decimal.Decimal, error) {
	if !brNumber.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return decimal.NewFromString(s)
}
