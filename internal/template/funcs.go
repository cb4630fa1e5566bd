package template

import (
	"strconv"
	"strings"
)

// Func is a built-in template function.
type Func func(vars Lookup, args []string) (string, error)

var funcs = map[string]Func{
	"path_segment": pathSegment,
}

// Call invokes the function named by args[0] with the remaining arguments.
func Call(vars Lookup, args []string) (string, error) {
	if len(args) == 0 {
		return "", newFuncError(TooFewArguments, "", "function name is missing")
	}
	fn, ok := funcs[args[0]]
	if !ok {
		return "", newFuncError(UnknownFunction, args[0], "unknown function")
	}
	return fn(vars, args[1:])
}

// pathSegment returns one '/'-separated segment of a variable.
// Usage: path_segment NAME INDEX. A negative INDEX counts from the end.
// An unset NAME yields an empty result rather than an error.
func pathSegment(vars Lookup, args []string) (string, error) {
	if len(args) < 2 {
		return "", newFuncError(TooFewArguments, "path_segment", "usage: path_segment NAME INDEX")
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return "", &FuncError{Type: InvalidArgument, Func: "path_segment", Message: "index must be an integer", Cause: err}
	}

	value, ok := vars.Get(args[0])
	if !ok {
		return "", nil
	}

	segments := strings.Split(value, "/")
	if index < 0 {
		index += len(segments)
	}
	if index < 0 || index >= len(segments) {
		return "", newFuncError(IndexOutOfRange, "path_segment", "index "+args[1]+" out of range")
	}
	return segments[index], nil
}
