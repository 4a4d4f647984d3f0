package gomold

import (
	"bytes"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver converts between raw bytes and the generic tree the engine walks
// (map[string]any, []any, string, bool, json.Number / native numerics, nil).
// The default implementation is backed by goccy/go-json and may be swapped
// with SetDriver; drivers for other formats live under source/.
type Driver interface {
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = gojsonDriver{}
)

// SetDriver replaces the global driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = gojsonDriver{}
	driverMu.Unlock()
}

// DefaultDriver returns the built-in go-json backed driver without touching
// the global selection.
func DefaultDriver() Driver { return gojsonDriver{} }

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// gojsonDriver wraps the goccy/go-json implementation. Numbers are decoded
// as json.Number so the engine can tell integral text from floating text.
type gojsonDriver struct{}

func (gojsonDriver) Unmarshal(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (gojsonDriver) Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func (gojsonDriver) Name() string { return "go-json" }
