// Package formula implements genes encoding arithmetic and logical
// expressions over the neurotransmitter levels.
//
// The gene payload is read in pairs of amino acids, every pair being a
// token: an operator, a function, a digit or a transmitter name. The
// resulting text is compiled with expr and evaluated against
// neuro.Levels.
package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
)

// log is the global logging variable.
var log = logging.MustGetLogger("formula")

var (
	// ErrMalformed is returned when a formula cannot be compiled.
	ErrMalformed = errors.New("malformed formula")
	// ErrEvaluation is returned when a formula cannot be evaluated.
	ErrEvaluation = errors.New("formula evaluation failed")
)

// Role is the way the host uses the formula result.
type Role int

const (
	// Update formulas produce a number.
	Update Role = iota
	// Activation formulas produce a boolean gate.
	Activation
)

func (r Role) String() string {
	if r == Activation {
		return "activation"
	}
	return "update"
}

// options are shared by all the compiled formulas.
var options = []expr.Option{
	expr.Env(neuro.Levels{}.Vars()),
	unary("sin", math.Sin),
	unary("cos", math.Cos),
	unary("ln", math.Log),
	unary("log", math.Log10),
	unary("log2", math.Log2),
}

func unary(name string, f func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...interface{}) (interface{}, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d", name, len(params))
		}
		x, err := toFloat(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		return f(x), nil
	})
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float64:
		return x, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

// Formula is a compiled formula gene.
type Formula struct {
	Role   Role
	Source string

	program *vm.Program
}

// Compile compiles the formula source.
func Compile(src string) (*Formula, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty formula", ErrMalformed)
	}
	program, err := expr.Compile(src, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, src, err)
	}
	return &Formula{Source: src, program: program}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Formula {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// Kind returns genes.KindFormula.
func (f *Formula) Kind() genes.Kind {
	return genes.KindFormula
}

func (f *Formula) String() string {
	return fmt.Sprintf("<Formula %v: %s>", f.Role, f.Source)
}

// Eval evaluates the formula.
func (f *Formula) Eval(l neuro.Levels) (interface{}, error) {
	res, err := expr.Run(f.program, l.Vars())
	if err != nil {
		return nil, fmt.Errorf("%w: %s with %v: %v", ErrEvaluation, f.Source, l, err)
	}
	return res, nil
}

// Number evaluates the formula expecting a numeric result.
func (f *Formula) Number(l neuro.Levels) (float64, error) {
	res, err := f.Eval(l)
	if err != nil {
		return 0, err
	}
	x, err := toFloat(res)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrEvaluation, f.Source, err)
	}
	return x, nil
}

// Active evaluates the formula expecting a boolean result.
func (f *Formula) Active(l neuro.Levels) (bool, error) {
	res, err := f.Eval(l)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: expected a boolean, got %T", ErrEvaluation, f.Source, res)
	}
	return b, nil
}

// Parser decodes formula genes.
type Parser struct {
	Role Role
	// Width is the stop run width, normally the promoter size.
	Width int
}

// Parse implements genes.Parser.
func (p Parser) Parse(body []bio.AminoAcid) (genes.Record, int, error) {
	end, consumed := End(body, p.Width)
	src := Tokenize(body[:end])
	log.Debugf("Decoded %v formula %q from %d amino acids", p.Role, src, consumed)
	f, err := Compile(src)
	if err != nil {
		return nil, consumed, err
	}
	f.Role = p.Role
	return f, consumed, nil
}
