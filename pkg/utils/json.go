package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnmarshalJson reshapes a decoded message payload (usually a
// map[string]any) into T. A payload that already holds a T is returned as is.
func UnmarshalJson[T any](v any) (T, error) {
	if result, ok := v.(T); ok {
		return result, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return *new(T), errors.WithMessage(err, "marshal json")
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return *new(T), errors.WithMessage(err, "unmarshal json")
	}
	return result, nil
}
