// Command gen renders the per-arity callable and tuple types.
//
// It is run through go:generate from the capfn and tuple packages:
//
//	go run ../internal/gen -kind read -out read_gen.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	errUnknownKind = errors.New("unknown kind")
	errArityRange  = errors.New("arity out of range")
)

var words = []string{"no", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven", "twelve"}

type arity struct {
	N            int
	Word         string
	TypeParams   string
	ParamTypes   string
	ParamTail    string
	Params       string
	ArgTail      string
	StructFields string
	Literal      string
	Values       string
}

type data struct {
	Package string
	Max     int
	Arities []arity
}

func callableArity(n int) arity {
	a := arity{N: n}
	switch n {
	case 0:
		a.Word = "no parameters"
	case 1:
		a.Word = "one parameter"
	default:
		a.Word = words[n] + " parameters"
	}

	types := make([]string, 0, n)
	params := make([]string, 0, n)
	var typeTail, argTail strings.Builder
	for i := 1; i <= n; i++ {
		p := fmt.Sprintf("P%d", i)
		types = append(types, p)
		params = append(params, fmt.Sprintf("p%d %s", i, p))
		typeTail.WriteString(", " + p)
		fmt.Fprintf(&argTail, ", p%d", i)
	}
	a.TypeParams = strings.Join(append(append([]string{"C"}, types...), "R"), ", ")
	a.ParamTypes = strings.Join(types, ", ")
	a.ParamTail = typeTail.String()
	a.Params = strings.Join(params, ", ")
	a.ArgTail = argTail.String()
	return a
}

func tupleArity(n int) arity {
	a := arity{N: n, Word: words[n] + " values"}

	types := make([]string, 0, n)
	params := make([]string, 0, n)
	fields := make([]string, 0, n)
	inits := make([]string, 0, n)
	values := make([]string, 0, n)
	for i := 0; i < n; i++ {
		t := string(rune('A' + i))
		v := strings.ToLower(t)
		types = append(types, t)
		params = append(params, v+" "+t)
		fields = append(fields, fmt.Sprintf("\tV%d %s", i+1, t))
		inits = append(inits, fmt.Sprintf("V%d: %s", i+1, v))
		values = append(values, fmt.Sprintf("t.V%d", i+1))
	}
	a.TypeParams = strings.Join(types, ", ")
	a.ParamTypes = a.TypeParams
	a.Params = strings.Join(params, ", ")
	a.StructFields = strings.Join(fields, "\n")
	a.Literal = fmt.Sprintf("T%d[%s]{%s}", n, a.TypeParams, strings.Join(inits, ", "))
	a.Values = strings.Join(values, ", ")
	return a
}

// render executes the template for kind over arities up to maxArity and
// returns gofmt'ed source.
func render(kind, pkg string, maxArity int) ([]byte, error) {
	var (
		text   string
		lowest int
		build  func(int) arity
	)
	switch kind {
	case "read":
		text, build = readTemplate, callableArity
	case "mut":
		text, build = mutTemplate, callableArity
	case "once":
		text, build = onceTemplate, callableArity
	case "tuple":
		text, lowest, build = tupleTemplate, 2, tupleArity
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
	if maxArity < lowest || maxArity >= len(words) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", errArityRange, maxArity, lowest, len(words)-1)
	}

	d := data{Package: pkg, Max: maxArity}
	for n := lowest; n <= maxArity; n++ {
		d.Arities = append(d.Arities, build(n))
	}

	tmpl, err := template.New(kind).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", kind, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("execute %s template: %w", kind, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s output: %w", kind, err)
	}
	return src, nil
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	))
}

func main() {
	kind := flag.String("kind", "", "what to generate: read, mut, once or tuple")
	maxArity := flag.Int("max", 8, "largest arity to generate")
	out := flag.String("out", "", "output file")
	pkg := flag.String("pkg", os.Getenv("GOPACKAGE"), "package name of the output file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() {
		_ = logger.Sync()
	}()

	if *out == "" || *pkg == "" {
		logger.Fatal("both -out and -pkg (or $GOPACKAGE) are required")
	}

	logger.Debug("rendering", zap.String("kind", *kind), zap.String("package", *pkg), zap.Int("max", *maxArity))
	src, err := render(*kind, *pkg, *maxArity)
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal("write failed", zap.String("out", *out), zap.Error(err))
	}
	logger.Info("generated", zap.String("kind", *kind), zap.String("out", *out), zap.Int("bytes", len(src)))
}
