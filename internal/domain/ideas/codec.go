package ideas

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeList serializes the idea list into the persisted JSON array layout.
// A nil list is written as "[]".
func EncodeList(list []*Idea) ([]byte, error) {
	if list == nil {
		list = []*Idea{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode ideas: %w", err)
	}
	return data, nil
}

// DecodeList parses a persisted JSON array. Empty or blank input yields an
// empty list; anything unparseable wraps ErrPersistenceUnavailable.
func DecodeList(data []byte) ([]*Idea, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*Idea{}, nil
	}
	var list []*Idea
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: decode ideas: %v", ErrPersistenceUnavailable, err)
	}
	if list == nil {
		list = []*Idea{}
	}
	out := list[:0]
	for _, it := range list {
		if it != nil {
			out = append(out, it)
		}
	}
	return out, nil
}
