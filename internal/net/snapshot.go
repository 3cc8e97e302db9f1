package net

import (
	"encoding/json"
	"fmt"

	"CurveLab/internal/curve"
)

// Snapshot is the wire form of a whole curve. The host sends one on every
// edit; a mirror replaces its curve with whatever arrives.
type Snapshot struct {
	Keys []curve.Keyframe `json:"keys"`
}

func EncodeSnapshot(keys []curve.Keyframe) ([]byte, error) {
	data, err := json.Marshal(Snapshot{Keys: keys})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}
