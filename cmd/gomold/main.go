package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	gojson "github.com/goccy/go-json"

	gomold "github.com/reoring/gomold"
	jsonitersrc "github.com/reoring/gomold/source/jsoniter"
	yamlsrc "github.com/reoring/gomold/source/yaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "transcode":
		transcodeCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gomold CLI\n\nUsage:\n  gomold transcode -from json|yaml|jsoniter -to json|yaml [-i file] [-o file] [-pretty]\n  gomold inspect -from json|yaml|jsoniter [-i file]\n\nNotes:\n  - Reads stdin and writes stdout unless -i / -o name files.")
}

func transcodeCmd(args []string) {
	fs := flag.NewFlagSet("transcode", flag.ExitOnError)
	var from string
	var to string
	var in string
	var out string
	var pretty bool
	fs.StringVar(&from, "from", "json", "input format: json, yaml or jsoniter")
	fs.StringVar(&to, "to", "yaml", "output format: json or yaml")
	fs.StringVar(&in, "i", "", "input file (default stdin)")
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	fs.BoolVar(&pretty, "pretty", false, "indent JSON output")
	_ = fs.Parse(args)

	src, ok := driverFor(from)
	if !ok || (to != "json" && to != "yaml") {
		fs.Usage()
		os.Exit(2)
	}
	dst, _ := driverFor(to)

	data, err := readInput(in)
	if err != nil {
		fatalf("read input: %v", err)
	}
	tree, err := src.Unmarshal(data)
	if err != nil {
		fatalf("parse %s: %v", src.Name(), err)
	}
	if to == "yaml" {
		tree = denumber(tree)
	}

	var rendered []byte
	if to == "json" && pretty {
		rendered, err = gojson.MarshalIndent(tree, "", "  ")
	} else {
		rendered, err = dst.Marshal(tree)
	}
	if err != nil {
		fatalf("render %s: %v", dst.Name(), err)
	}
	if len(rendered) > 0 && rendered[len(rendered)-1] != '\n' {
		rendered = append(rendered, '\n')
	}

	if out == "" {
		if _, err := os.Stdout.Write(rendered); err != nil {
			fatalf("write output: %v", err)
		}
		return
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		fatalf("write output: %v", err)
	}
}

var dump = spew.ConfigState{Indent: "  ", SortKeys: true}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var from string
	var in string
	fs.StringVar(&from, "from", "json", "input format: json, yaml or jsoniter")
	fs.StringVar(&in, "i", "", "input file (default stdin)")
	_ = fs.Parse(args)

	src, ok := driverFor(from)
	if !ok {
		fs.Usage()
		os.Exit(2)
	}
	data, err := readInput(in)
	if err != nil {
		fatalf("read input: %v", err)
	}
	tree, err := src.Unmarshal(data)
	if err != nil {
		fatalf("parse %s: %v", src.Name(), err)
	}
	dump.Fdump(os.Stdout, tree)
}

func driverFor(name string) (gomold.Driver, bool) {
	switch name {
	case "json":
		return gomold.DefaultDriver(), true
	case "yaml":
		return yamlsrc.Driver(), true
	case "jsoniter":
		return jsonitersrc.Driver(), true
	}
	return nil, false
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// denumber rewrites json.Number tokens into native numerics so the YAML
// encoder renders them unquoted.
func denumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, el := range t {
			t[k] = denumber(el)
		}
		return t
	case []any:
		for i, el := range t {
			t[i] = denumber(el)
		}
		return t
	default:
		return v
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
