// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tabview/config"
	"github.com/katalvlaran/tabview/display"
	"github.com/katalvlaran/tabview/errs"
	"github.com/katalvlaran/tabview/host/memhost"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/logging"
	"github.com/katalvlaran/tabview/matrix"
	"github.com/katalvlaran/tabview/value"
	"github.com/katalvlaran/tabview/vecmath"
	"github.com/katalvlaran/tabview/view"
)

var ErrUnknownFunction = errors.New("unknown function")

// functions maps the names accepted by apply to their implementation.
var functions = map[string]func(any) (value.NumericLike, error){
	"abs":         vecmath.Abs,
	"acos":        vecmath.Acos,
	"acosh":       vecmath.Acosh,
	"asin":        vecmath.Asin,
	"asinh":       vecmath.Asinh,
	"atan":        vecmath.Atan,
	"atanh":       vecmath.Atanh,
	"ceil":        vecmath.Ceil,
	"cloglog":     vecmath.Cloglog,
	"cos":         vecmath.Cos,
	"cosh":        vecmath.Cosh,
	"digamma":     vecmath.Digamma,
	"exp":         vecmath.Exp,
	"floor":       vecmath.Floor,
	"int":         vecmath.Int,
	"invcloglog":  vecmath.InvCloglog,
	"invlogit":    vecmath.InvLogit,
	"ln":          vecmath.Ln,
	"lnfactorial": vecmath.LnFactorial,
	"lngamma":     vecmath.LnGamma,
	"log10":       vecmath.Log10,
	"logit":       vecmath.Logit,
	"sign":        vecmath.Sign,
	"sin":         vecmath.Sin,
	"sinh":        vecmath.Sinh,
	"sqrt":        vecmath.Sqrt,
	"sum":         vecmath.Sum,
	"tan":         vecmath.Tan,
	"tanh":        vecmath.Tanh,
	"trigamma":    vecmath.Trigamma,
}

func fatal(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "Error: %s\n", msg)
}

// Represents the state used when processing a command.
type Action struct {
	cmd   *cobra.Command
	cfg   config.Config
	log   *slog.Logger
	store *memhost.Store
	out   display.Writer
}

func newAction(cmd *cobra.Command) (*Action, error) {
	a := &Action{cmd: cmd}
	if err := a.loadConfig(); err != nil {
		return nil, err
	}
	level := a.cfg.Logging.Level
	if s := a.getString("log-level"); s != "" {
		level = s
	}
	lc := a.cfg.LoggerConfig(cmd.ErrOrStderr())
	lc.Level = level
	log, err := logging.New(lc)
	if err != nil {
		return nil, errors.Wrap(err, "logger")
	}
	a.log = log

	var opts []display.Option
	if a.getBool("smcl") {
		opts = append(opts, display.WithSMCL())
	}
	a.out = display.NewWriter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts...)

	if err := a.loadData(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

// getSpec parses an index specifier flag; an empty flag selects all.
func (a *Action) getSpec(name string) (index.Spec, error) {
	spec, err := index.Parse(a.getString(name))
	if err != nil {
		return index.Spec{}, errors.Wrapf(err, "--%s", name)
	}
	return spec, nil
}

func (a *Action) loadConfig() error {
	a.cfg = config.Default()
	fname := a.getString("config")
	if fname == "" {
		return nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer f.Close()
	if a.cfg, err = config.Load(f); err != nil {
		return errors.Wrapf(err, "load config %s", fname)
	}
	return nil
}

func (a *Action) loadData() error {
	fname := a.getString("data")
	f, err := os.Open(fname)
	if err != nil {
		return errors.Wrap(err, "open dataset")
	}
	defer f.Close()
	if a.store, err = memhost.LoadYAML(f); err != nil {
		return errors.Wrapf(err, "load dataset %s", fname)
	}
	a.log.Debug("dataset loaded", "file", fname, "rows", a.store.RowCount(), "cols", a.store.ColumnCount())
	return nil
}

func listTable(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	opts := append(a.cfg.ViewOptions(), view.WithLogger(a.log))
	if len(args) > 0 {
		opts = append(opts, view.WithColumnNames(args...))
	}
	if name := a.getString("select"); name != "" {
		opts = append(opts, view.WithSelectName(name))
	}
	if a.getBool("complete") {
		if a.getString("select") != "" {
			return errors.New("--select and --complete cannot be combined")
		}
		opts = append(opts, view.WithCompleteCases())
	}
	rows, err := a.getSpec("rows")
	if err != nil {
		return err
	}

	t, err := view.New(a.store, opts...)
	if err != nil {
		return errors.Wrap(err, "list")
	}
	if t, err = t.Sub(rows, index.All()); err != nil {
		return errors.Wrap(err, "list")
	}
	return errors.Wrap(t.List(a.out), "list")
}

func listMatrix(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	rows, err := a.getSpec("rows")
	if err != nil {
		return err
	}
	cols, err := a.getSpec("cols")
	if err != nil {
		return err
	}

	opts := append(a.cfg.MatrixOptions(), matrix.WithLogger(a.log))
	m, err := matrix.New(a.store, args[0], opts...)
	if err != nil {
		return errors.Wrap(err, "matrix")
	}
	if m, err = m.Sub(rows, cols); err != nil {
		return errors.Wrap(err, "matrix")
	}
	return errors.Wrap(m.ListFormat(a.out, a.getString("format")), "matrix")
}

func applyFunction(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	fn, ok := functions[strings.ToLower(args[0])]
	if !ok {
		return errors.Wrapf(ErrUnknownFunction, "%q", args[0])
	}

	mirror := view.NewMirror(a.store, a.log)
	in, err := mirror.Variable(args[1])
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	vals, err := in.Values()
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	res, err := fn(vals)
	if err != nil {
		return errors.Wrapf(err, "apply %s", args[0])
	}

	into := a.getString("into")
	if into == "" {
		return a.out.Display(fmt.Sprintf("{txt}%s(%s){res} %v\n", args[0], in.Name(), res))
	}
	// exact names only: an abbreviation must not overwrite another column
	if _, err := a.store.ColumnIndex(into, false); errors.Is(err, errs.ErrNotFound) {
		if err := a.addColumn(into); err != nil {
			return err
		}
	} else if err != nil {
		return errors.Wrapf(err, "store into %s", into)
	}
	if sc, ok := value.ScalarOf(res); ok {
		res = broadcast(sc, mirror.Len())
	}
	if err := mirror.SetVariable(into, res); err != nil {
		return errors.Wrapf(err, "store into %s", into)
	}

	t, err := view.New(a.store, append(a.cfg.ViewOptions(), view.WithColumnNames(in.Name(), into))...)
	if err != nil {
		return errors.Wrap(err, "apply")
	}
	return errors.Wrap(t.List(a.out), "apply")
}

// broadcast repeats a reduced result (sum) down every row.
func broadcast(s value.Scalar, n int) value.Vector {
	out := make(value.Vector, n)
	for i := range out {
		out[i] = s
	}

	return out
}

// addColumn creates a numeric column of canonical missing values.
func (a *Action) addColumn(name string) error {
	vals := make([]float64, a.store.RowCount())
	for i := range vals {
		vals[i] = value.Missing.Float64()
	}
	if err := a.store.AddNumeric(name, vals); err != nil {
		return errors.Wrapf(err, "create column %s", name)
	}
	a.log.Debug("column created", "name", name)
	return nil
}

func describe(cmd *cobra.Command, _ []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "{txt}rows: {res}%d\n", a.store.RowCount())
	for j := 0; j < a.store.ColumnCount(); j++ {
		name, err := a.store.ColumnName(j)
		if err != nil {
			return errors.Wrap(err, "describe")
		}
		isStr, err := a.store.ColumnIsString(j)
		if err != nil {
			return errors.Wrap(err, "describe")
		}
		kind := memhost.KindNumeric
		if isStr {
			kind = memhost.KindString
		}
		fmt.Fprintf(&b, "{txt}c%d {res}%s {txt}%s\n", j, name, kind)
	}
	for _, name := range a.store.MatrixNames() {
		fmt.Fprintf(&b, "{txt}matrix {res}%s[%d,%d]\n", name, a.store.MatrixRows(name), a.store.MatrixCols(name))
	}
	return a.out.Display(b.String())
}
