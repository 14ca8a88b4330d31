package message

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// toLowerCamel converts snake_case to lowerCamelCase
func toLowerCamel(s string) string {
	if s == "" || !strings.Contains(s, "_") {
		if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
			return string(s[0]-'A'+'a') + s[1:]
		}
		return s
	}
	out := make([]byte, 0, len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if len(out) == 0 {
			if c >= 'A' && c <= 'Z' {
				c = c - 'A' + 'a'
			}
		} else if upperNext && c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	return string(out)
}

// coerceToInt64 accepts Go integers, JSON numbers, integral floats and
// integer strings.
func coerceToInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if iv, err := t.Int64(); err == nil {
			return iv, nil
		}
		return integralFloat(t.String())
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("%w: non-integer numeric %v for integer field", ErrTypeMismatch, t)
		}
		return int64(t), nil
	case float32:
		return coerceToInt64(float64(t))
	case string:
		if strings.ContainsAny(t, ".eE") {
			return integralFloat(t)
		}
		iv, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return iv, nil
	}
	return toInt64(v)
}

func integralFloat(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: non-integer numeric %s for integer field", ErrTypeMismatch, s)
	}
	return int64(f), nil
}

func coerceToUint64(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case json.Number:
		if uv, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return uv, nil
		}
		n, err := integralFloat(t.String())
		if err != nil {
			return 0, err
		}
		return toUint64(n)
	case float64:
		if t < 0 || t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, fmt.Errorf("%w: non-integer numeric %v for unsigned field", ErrTypeMismatch, t)
		}
		return uint64(t), nil
	case float32:
		return coerceToUint64(float64(t))
	case string:
		if strings.ContainsAny(t, ".eE") {
			n, err := integralFloat(t)
			if err != nil {
				return 0, err
			}
			return toUint64(n)
		}
		uv, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return uv, nil
	}
	return toUint64(v)
}

func coerceToFloat64(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		return coerceToFloat64(t.String())
	case string:
		switch t {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return f, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("%w: %T is not a number", ErrTypeMismatch, v)
}
