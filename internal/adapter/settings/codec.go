package settings

import (
	"encoding/json"
	"fmt"

	"atcoder-notifier/internal/domain/model"
)

func decode(data []byte) (model.Settings, error) {
	var s model.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.Users == nil {
		s.Users = []string{}
	}
	return s, nil
}

func encode(s model.Settings) ([]byte, error) {
	if s.Users == nil {
		s.Users = []string{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return data, nil
}

// Defaults is the value returned before anything has been saved.
func Defaults() model.Settings {
	return model.Settings{Users: []string{}}
}
