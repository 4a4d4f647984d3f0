package gomold

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

var debugSpew = spew.ConfigState{Indent: "  ", SortKeys: true}

var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// SetDebugOutput redirects the dumps produced by fields marked for
// debugging. Passing nil restores os.Stderr.
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
	debugMu.Unlock()
}

// debugDump prints the raw value found for a field before any conversion
// runs. It never influences the decode outcome.
func debugDump(typeName, property, key string, raw any, found bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !found {
		fmt.Fprintf(debugOut, "gomold: %s.%s (key %q): no value\n", typeName, property, key)
		return
	}
	fmt.Fprintf(debugOut, "gomold: %s.%s (key %q):\n", typeName, property, key)
	debugSpew.Fdump(debugOut, raw)
}
