package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	contractx "github.com/tanpawarit/Chative-Sales-Catalog/agent/contract"
)

// Argument coercion for tool calls. Models emit loosely typed JSON, so
// numbers may arrive as float64, json.Number, or even strings.

func stringArg(args map[string]any, key string, required bool) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("%w: %s is required", contractx.ErrValidation, key)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", contractx.ErrValidation, key)
	}
	return s, nil
}

func numberArg(args map[string]any, key string) (*float64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", contractx.ErrValidation, key)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", contractx.ErrValidation, key)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("%w: %s must be a number", contractx.ErrValidation, key)
	}
	return &f, nil
}

func intArg(args map[string]any, key string, fallback int) (int, error) {
	f, err := numberArg(args, key)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return fallback, nil
	}
	if *f != math.Trunc(*f) {
		return 0, fmt.Errorf("%w: %s must be an integer", contractx.ErrValidation, key)
	}
	return int(*f), nil
}
