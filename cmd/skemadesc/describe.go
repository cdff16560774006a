package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"plugin"
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/skemadesc"
	"github.com/reoring/skemadesc/jsonschema"
	"github.com/reoring/skemadesc/schema"
)

type describeOpts struct {
	pkgdir   string
	symbol   string
	format   string
	indent   bool
	out      string
	maxDepth int
}

func newDescribeCmd(logger func() *log.Logger) *cobra.Command {
	var o describeOpts
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Build a plugin from a package, load a schema symbol and print its descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDescribe(logger(), cmd.OutOrStdout(), o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.pkgdir, "pkgdir", "", "directory of the package that defines the schema")
	f.StringVar(&o.symbol, "symbol", "", "variable or zero-arg function name that yields a schema node")
	f.StringVar(&o.format, "format", "json", "output format (json, yaml, jsonschema)")
	f.BoolVar(&o.indent, "indent", false, "indent JSON output")
	f.StringVarP(&o.out, "output", "o", "", "output file (default stdout)")
	f.IntVar(&o.maxDepth, "max-depth", 0, "maximum descriptor nesting (0 = unlimited)")
	_ = cmd.MarkFlagRequired("pkgdir")
	_ = cmd.MarkFlagRequired("symbol")
	return cmd
}

func runDescribe(lg *log.Logger, w io.Writer, o describeOpts) error {
	if o.format != "json" && o.format != "yaml" && o.format != "jsonschema" {
		return fmt.Errorf("unsupported format %q", o.format)
	}
	importPath, err := goList(o.pkgdir, "{{.ImportPath}}")
	if err != nil {
		return fmt.Errorf("failed to detect import path for %s: %w", o.pkgdir, err)
	}
	lg.Debug("describe", "pkgdir", o.pkgdir, "importPath", importPath, "symbol", o.symbol)

	sym, err := loadPluginSymbol(lg, o.pkgdir, importPath, o.symbol)
	if err != nil {
		return err
	}
	node, err := resolveNode(sym)
	if err != nil {
		return fmt.Errorf("symbol %s: %w", o.symbol, err)
	}
	lg.Debug("schema loaded", "kind", node.Kind(), "type", fmt.Sprintf("%T", node))

	desc, err := skemadesc.SerializeWith(node, skemadesc.Options{MaxDepth: o.maxDepth, Logger: lg})
	if err != nil {
		return fmt.Errorf("failed to describe %s: %w", o.symbol, err)
	}
	data, err := encodeDescriptor(desc, o.format, o.indent)
	if err != nil {
		return err
	}
	return writeOutput(lg, w, o.out, data)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(lg *log.Logger, w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	lg.Info("wrote descriptor", "file", path)
	return nil
}

// loadPluginSymbol builds a plugin wrapper under pkgdir that re-exports symbol
// and looks it up.
func loadPluginSymbol(lg *log.Logger, pkgdir, importPath, symbol string) (plugin.Symbol, error) {
	tmp := filepath.Join(pkgdir, ".skemadesc_plugin_wrapper")
	_ = os.RemoveAll(tmp)
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create wrapper dir: %w", err)
	}
	defer os.RemoveAll(tmp)
	wrapper := "package main\n\nimport pkg \"" + importPath + "\"\n\nvar " + symbol + " = pkg." + symbol + "\n"
	if err := os.WriteFile(filepath.Join(tmp, "main.go"), []byte(wrapper), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write wrapper: %w", err)
	}

	so := filepath.Join(os.TempDir(), fmt.Sprintf("skemadesc_%d.so", time.Now().UnixNano()))
	defer os.Remove(so)
	tmpArg := tmp
	if !strings.HasPrefix(tmpArg, "./") && !filepath.IsAbs(tmpArg) {
		tmpArg = "./" + tmpArg
	}
	lg.Debug("building plugin", "out", so)
	cmd := exec.Command("go", "build", "-buildmode=plugin", "-o", so, tmpArg)
	cmd.Env = os.Environ()
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("build plugin failed: %w\n%s", err, out)
	}
	p, err := plugin.Open(so)
	if err != nil {
		return nil, fmt.Errorf("failed to open plugin: %w", err)
	}
	sym, err := p.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup symbol: %w", err)
	}
	return sym, nil
}

var errNotSchema = errors.New("value is not a schema node")

// resolveNode unwraps a plugin symbol into a schema node. The wrapper exports
// a variable, so the symbol is a pointer to it; a function value is called
// without arguments.
func resolveNode(sym any) (schema.Node, error) {
	v := reflect.ValueOf(sym)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, errNotSchema
		}
		if n, ok := sym.(schema.Node); ok {
			return n, nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.Kind() == reflect.Func {
		if v.IsNil() || v.Type().NumIn() != 0 || v.Type().NumOut() == 0 {
			return nil, fmt.Errorf("%w: function must take no arguments and return a node", errNotSchema)
		}
		v = v.Call(nil)[0]
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, errNotSchema
	}
	n, ok := v.Interface().(schema.Node)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", errNotSchema, v.Type())
	}
	if rv := reflect.ValueOf(n); !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil, fmt.Errorf("%w: nil", errNotSchema)
	}
	return n, nil
}

func encodeDescriptor(desc *skemadesc.Descriptor, format string, indent bool) ([]byte, error) {
	var v any = desc
	switch format {
	case "yaml":
		return yaml.Marshal(desc)
	case "jsonschema":
		v = jsonschema.FromDescriptor(desc)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return nil, err
		}
		b = buf.Bytes()
	}
	return append(b, '\n'), nil
}

func goList(dir, format string) (string, error) {
	cmd := exec.Command("go", "list", "-f", format, dir)
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}
