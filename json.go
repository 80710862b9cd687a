package store

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the json.Marshaler interface by encoding the
// current state.
func (s *Store[S, A]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal store state: %w", err)
	}

	return data, nil
}
