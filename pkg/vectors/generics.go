package vectors

import (
	"fmt"
	"strconv"
	"strings"
)

// Generic names understood by the generators
const (
	GenericParityBits = "PARITY_BITS"
	GenericSize       = "SIZE"
	GenericEvenParity = "EVEN_PARITY"
)

// Generics holds KEY=VALUE overrides shared with the HDL testbench
type Generics map[string]string

// ParseGenerics parses KEY=VALUE pairs. Later pairs override earlier ones.
func ParseGenerics(pairs []string) (Generics, error) {
	g := Generics{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid generic %q: expected KEY=VALUE", pair)
		}
		g[strings.ToUpper(key)] = strings.TrimSpace(value)
	}
	return g, nil
}

// Int returns the integer value of key, reporting whether it was set
func (g Generics) Int(key string) (int, bool, error) {
	raw, ok := g[key]
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("generic %s: %q is not an integer", key, raw)
	}
	return v, true, nil
}

// Bool returns the VHDL boolean value of key ("true"/"false", any case),
// reporting whether it was set
func (g Generics) Bool(key string) (bool, bool, error) {
	raw, ok := g[key]
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(raw) {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	}
	return false, true, fmt.Errorf("generic %s: %q is not a VHDL boolean", key, raw)
}
