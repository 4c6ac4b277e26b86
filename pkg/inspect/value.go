package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/model"
)

// ErrInvalidInput is returned when a command-line value does not fit the
// resource type.
var ErrInvalidInput = errors.New("invalid input")

// ParseValue converts a command-line argument for a SET on res.
//
// Bool resources accept true/false, on/off, yes/no and 1/0. Int and enum
// resources accept decimal or 0x-prefixed hex integers. String resources
// take the input verbatim. Resources of unknown type get an integer when
// the input parses as one, otherwise the string.
func ParseValue(res model.Resource, input string) (any, error) {
	switch res.Type {
	case model.DataTypeBool:
		b, ok := parseBool(input)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a boolean, got %q", ErrInvalidInput, res.Name, input)
		}
		return b, nil
	case model.DataTypeInt, model.DataTypeEnum:
		i, err := parseInt(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidInput, res.Name, input)
		}
		return i, nil
	case model.DataTypeString:
		return input, nil
	case model.DataTypeRecords:
		return nil, fmt.Errorf("%w: %s is a list", ErrInvalidInput, res.Name)
	default:
		if i, err := parseInt(input); err == nil {
			return i, nil
		}
		return input, nil
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	}
	return false, false
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseInt(s[2:], 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseParams parses key=value arguments into a parameter map.
func ParseParams(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	params := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidInput, arg)
		}
		params[k] = v
	}
	return params, nil
}
