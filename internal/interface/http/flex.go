package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotNumeric = errors.New("expected a number or numeric string")

// FlexNumber accepts a JSON number or a string and keeps its text.
// Parsing is left to the service so that bad values surface as InvalidInput.
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexNumber(s)
	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return errNotNumeric
		}
		*n = FlexNumber(num.String())
	}
	return nil
}

// FlexStrings accepts either a list of strings or a single string.
type FlexStrings []string

func (s *FlexStrings) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = FlexStrings{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}
