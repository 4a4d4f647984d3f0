// Package jsoniter provides a gomold.Driver backed by json-iterator/go for
// callers already standardized on it.
package jsoniter

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"

	gomold "github.com/reoring/gomold"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Driver returns a gomold.Driver backed by json-iterator.
func Driver() gomold.Driver { return jsoniterDriver{} }

type jsoniterDriver struct{}

func (jsoniterDriver) Unmarshal(data []byte) (any, error) {
	dec := api.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (jsoniterDriver) Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func (jsoniterDriver) Name() string { return "jsoniter" }
