package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TargetID identifies the widget instance the player should act upon.
// It is opaque: the player may hand out numeric or string identifiers and
// both are sent back exactly as received. The zero value means "unset".
type TargetID struct {
	raw     string
	numeric bool
	set     bool
}

// TargetIDFromInt returns a numeric target identifier.
func TargetIDFromInt(id int64) TargetID {
	return TargetID{raw: strconv.FormatInt(id, 10), numeric: true, set: true}
}

// TargetIDFromString returns a string target identifier.
// The value is kept as a string even when it looks like a number.
func TargetIDFromString(id string) TargetID {
	return TargetID{raw: id, set: true}
}

// ParseTargetID converts user input (flags, config, env) into a TargetID.
// Integers become numeric identifiers, anything else stays a string.
// Empty input yields the unset identifier.
func ParseTargetID(s string) TargetID {
	s = strings.TrimSpace(s)
	if s == "" {
		return TargetID{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TargetIDFromInt(n)
	}
	return TargetIDFromString(s)
}

// IsSet reports whether the identifier carries a value.
func (t TargetID) IsSet() bool {
	return t.set
}

// IsNumeric reports whether the identifier is sent as a JSON number.
func (t TargetID) IsNumeric() bool {
	return t.numeric
}

// String returns the identifier as text, or "" when unset.
func (t TargetID) String() string {
	return t.raw
}

// Ptr returns a pointer to a copy of t, or nil when t is unset.
// Payloads use the pointer so an unset identifier is omitted.
func (t TargetID) Ptr() *TargetID {
	if !t.set {
		return nil
	}
	return &t
}

// MarshalJSON encodes numeric identifiers as numbers and others as strings.
func (t TargetID) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	if t.numeric {
		return []byte(t.raw), nil
	}
	return json.Marshal(t.raw)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (t *TargetID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = TargetID{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = TargetIDFromString(s)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("unsupported target id format: %s", string(trimmed))
	}
	*t = TargetID{raw: number.String(), numeric: true, set: true}
	return nil
}

// ResolveTargetID picks the per-call identifier when given, else the fallback.
func ResolveTargetID(explicit *TargetID, fallback TargetID) TargetID {
	if explicit != nil && explicit.IsSet() {
		return *explicit
	}
	return fallback
}
