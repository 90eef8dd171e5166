package selection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDraft is returned when a draft blob is not a JSON array of strings.
var ErrMalformedDraft = errors.New("malformed draft")

// EncodeDraft serializes codes as a JSON array, preserving order.
func EncodeDraft(codes []string) ([]byte, error) {
	if codes == nil {
		codes = []string{}
	}
	return json.Marshal(codes)
}

// DecodeDraft parses a blob produced by EncodeDraft. Repeated codes are
// collapsed to their first occurrence.
func DecodeDraft(blob []byte) ([]string, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrMalformedDraft)
	}

	// Pointers tell a null element apart from a string.
	var elems []*string
	if err := json.Unmarshal(blob, &elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDraft, err)
	}
	// "null" decodes without error but is not an array.
	if elems == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformedDraft)
	}

	codes := make([]string, 0, len(elems))
	for i, elem := range elems {
		if elem == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrMalformedDraft, i)
		}
		codes = append(codes, *elem)
	}

	return dedupe(codes), nil
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
