package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	msgMissing    = "Field required"
	msgInt        = "Input should be a valid integer"
	msgIntParsing = "Input should be a valid integer, unable to parse string as an integer"
	msgIntFloat   = "Input should be a valid integer, got a number with a fractional part"
	msgIntSize    = "Unable to parse input string as an integer, exceeded maximum size"
	msgFloat      = "Input should be a valid number"
	msgFloatParse = "Input should be a valid number, unable to parse string as a number"
	msgFinite     = "Input should be a finite number"
	msgString     = "Input should be a valid string"
)

// FieldError is one body field whose value could not be decoded.
type FieldError struct {
	Field string
	Type  string
	Msg   string
}

// FieldErrors lists the body fields that failed to decode, in field order.
// Absent fields appear as "missing" alongside the decode failures.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Msg)
	}
	return "invalid game input: " + strings.Join(parts, "; ")
}

// UnmarshalJSON decodes a write payload the lax way: integer fields take
// integral numbers, numeric strings and booleans; rating takes numbers,
// numeric strings and booleans; title and genre take strings only.
// Absent keys stay nil for the required check, an explicit null is a type error.
func (in *GameInput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*in = GameInput{}
	var errs FieldErrors
	failed := false

	decode := func(name string, set func(json.RawMessage) *FieldError) {
		raw, ok := fields[name]
		if !ok {
			errs = append(errs, FieldError{Field: name, Type: "missing", Msg: msgMissing})
			return
		}
		if fe := set(raw); fe != nil {
			fe.Field = name
			errs = append(errs, *fe)
			failed = true
		}
	}

	decode("id", func(raw json.RawMessage) *FieldError {
		v, fe := coerceInt(raw)
		in.ID = &v
		return fe
	})
	decode("title", func(raw json.RawMessage) *FieldError {
		v, fe := coerceString(raw)
		in.Title = &v
		return fe
	})
	decode("genre", func(raw json.RawMessage) *FieldError {
		v, fe := coerceString(raw)
		in.Genre = &v
		return fe
	})
	decode("max_players", func(raw json.RawMessage) *FieldError {
		v, fe := coerceInt(raw)
		in.MaxPlayers = &v
		return fe
	})
	decode("rating", func(raw json.RawMessage) *FieldError {
		v, fe := coerceFloat(raw)
		in.Rating = &v
		return fe
	})

	// Missing fields alone are left to the binding validator.
	if !failed {
		return nil
	}
	return errs
}

func decodeScalar(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	err := dec.Decode(&v)
	return v, err
}

func coerceInt(raw json.RawMessage) (int, *FieldError) {
	v, err := decodeScalar(raw)
	if err != nil {
		return 0, &FieldError{Type: "int_type", Msg: msgInt}
	}

	switch x := v.(type) {
	case json.Number:
		if n, err := strconv.Atoi(string(x)); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, &FieldError{Type: "int_parsing_size", Msg: msgIntSize}
		}
		if f != math.Trunc(f) {
			return 0, &FieldError{Type: "int_from_float", Msg: msgIntFloat}
		}
		return int(f), nil
	case string:
		s := strings.TrimSpace(x)
		if i := strings.IndexByte(s, '.'); i > 0 && strings.Trim(s[i+1:], "0") == "" {
			s = s[:i]
		}
		n, err := strconv.Atoi(s)
		if errors.Is(err, strconv.ErrRange) {
			return 0, &FieldError{Type: "int_parsing_size", Msg: msgIntSize}
		}
		if err != nil {
			return 0, &FieldError{Type: "int_parsing", Msg: msgIntParsing}
		}
		return n, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	return 0, &FieldError{Type: "int_type", Msg: msgInt}
}

func coerceFloat(raw json.RawMessage) (float64, *FieldError) {
	v, err := decodeScalar(raw)
	if err != nil {
		return 0, &FieldError{Type: "float_type", Msg: msgFloat}
	}

	var f float64
	switch x := v.(type) {
	case json.Number:
		if f, err = strconv.ParseFloat(string(x), 64); err != nil {
			return 0, &FieldError{Type: "float_parsing", Msg: msgFloatParse}
		}
	case string:
		if f, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return 0, &FieldError{Type: "float_parsing", Msg: msgFloatParse}
		}
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, &FieldError{Type: "float_type", Msg: msgFloat}
	}

	// NaN and Inf cannot be written back as JSON.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &FieldError{Type: "finite_number", Msg: msgFinite}
	}
	return f, nil
}

func coerceString(raw json.RawMessage) (string, *FieldError) {
	var s string
	if len(raw) == 0 || raw[0] != '"' || json.Unmarshal(raw, &s) != nil {
		return "", &FieldError{Type: "string_type", Msg: msgString}
	}
	return s, nil
}
