package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/on-the-ground/tabulated_go/functions"
	"github.com/on-the-ground/tabulated_go/functions/basic"
)

var errUnknownFunction = errors.New("unknown function")

// parseFunction resolves a function name such as "sin" or "log:2".
func parseFunction(name string) (functions.Function, error) {
	kind, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")
	if hasArg && kind != "log" {
		return nil, fmt.Errorf("%w: %q takes no argument", errUnknownFunction, name)
	}
	switch kind {
	case "exp":
		return basic.Exp{}, nil
	case "sin":
		return basic.Sin{}, nil
	case "cos":
		return basic.Cos{}, nil
	case "tan":
		return basic.Tan{}, nil
	case "ln":
		return basic.NaturalLog(), nil
	case "log":
		if !hasArg {
			return nil, fmt.Errorf("%w: %q needs a base, e.g. log:2", errUnknownFunction, name)
		}
		base, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("log base %q: %w", arg, err)
		}
		ln, err := basic.NewLog(base)
		if err != nil {
			return nil, err
		}
		return ln, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownFunction, name)
}
