// Package wire implements the Cucumber Wire Protocol's line-delimited JSON
// message shapes: the five request kinds, the response shapes they provoke,
// and the WireArg/StepArg/MatchReport data carried between them.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ArgKind tags which variant of the WireArg sum type an Arg holds.
type ArgKind int

const (
	// KindString holds a plain string argument (regex capture or docstring).
	KindString ArgKind = iota
	// KindNone holds a JSON null — an optional capture group that did not participate.
	KindNone
	// KindTable holds a table argument: an array of arrays of strings.
	KindTable
)

// Arg is the WireArg sum type from the data model: a regex capture, an absent
// capture, or a Gherkin data table, exactly as the driver encodes invoke args.
type Arg struct {
	Kind  ArgKind
	Str   string
	Table [][]string
}

// StringArg builds a string-kind Arg.
func StringArg(s string) Arg { return Arg{Kind: KindString, Str: s} }

// NoneArg builds a none-kind Arg.
func NoneArg() Arg { return Arg{Kind: KindNone} }

// TableArg builds a table-kind Arg.
func TableArg(rows [][]string) Arg { return Arg{Kind: KindTable, Table: rows} }

// FromStepArg converts a StepArg capture (string↔string, absent↔None) into the
// Arg an invoke request would have carried, used by Registry.Invoke to delegate
// one step to another via a fresh find_match.
func FromStepArg(s StepArg) Arg {
	if s.Val == nil {
		return NoneArg()
	}
	return StringArg(*s.Val)
}

// UnmarshalJSON decodes a JSON string as String, JSON null as None, and a JSON
// array-of-arrays-of-strings as Table. Any other shape is a protocol error.
func (a *Arg) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = NoneArg()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = StringArg(s)
		return nil
	}

	var rows [][]string
	if err := json.Unmarshal(b, &rows); err == nil {
		*a = TableArg(rows)
		return nil
	}

	return fmt.Errorf("wire: invalid argument shape: %s", b)
}

// MarshalJSON re-encodes an Arg in the same shape UnmarshalJSON accepts.
func (a Arg) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindNone:
		return []byte("null"), nil
	case KindTable:
		if a.Table == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Table)
	default:
		return json.Marshal(a.Str)
	}
}
