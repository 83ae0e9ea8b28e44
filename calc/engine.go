package calc

import "fmt"

const (
	defaultNestingLimit   = 256
	defaultMaxInputLength = 64 * 1024
)

// Unlimited disables a Config limit.
const Unlimited = -1

// Config bounds the work a single expression may cause. Zero values select
// the defaults; Unlimited turns a check off.
type Config struct {
	NestingLimit   int
	MaxInputLength int
}

// Engine parses and evaluates expressions under a fixed Config. It holds no
// per-expression state and is safe for concurrent use.
type Engine struct {
	config Config
}

// NewEngine constructs an Engine, filling in defaults for unset limits.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.NestingLimit < Unlimited {
		return nil, fmt.Errorf("calc: nesting limit must be non-negative or Unlimited, got %d", cfg.NestingLimit)
	}
	if cfg.MaxInputLength < Unlimited {
		return nil, fmt.Errorf("calc: max input length must be non-negative or Unlimited, got %d", cfg.MaxInputLength)
	}
	if cfg.NestingLimit == 0 {
		cfg.NestingLimit = defaultNestingLimit
	}
	if cfg.MaxInputLength == 0 {
		cfg.MaxInputLength = defaultMaxInputLength
	}
	return &Engine{config: cfg}, nil
}

// MustNewEngine is like NewEngine but panics on an invalid Config.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Parse turns source into a tree, rejecting anything left over after a
// complete expression.
func (e *Engine) Parse(source string) (Node, error) {
	if limit := e.config.MaxInputLength; limit != Unlimited && len(source) > limit {
		return nil, &ParseError{
			Kind: ErrInputTooLong,
			Msg:  fmt.Sprintf("expression is %d bytes, limit is %d", len(source), limit),
		}
	}
	nesting := e.config.NestingLimit
	if nesting == Unlimited {
		nesting = 0
	}
	return newParser(source, nesting).ParseExpression()
}

// Evaluate parses and evaluates one expression.
func (e *Engine) Evaluate(source string) (Number, error) {
	tree, err := e.Parse(source)
	if err != nil {
		return Number{}, err
	}
	return e.EvaluateTree(source, tree)
}

// EvaluateTree evaluates a tree previously returned by Parse. source is only
// used to render code frames in errors.
func (e *Engine) EvaluateTree(source string, tree Node) (Number, error) {
	ev := &evaluator{source: source}
	return ev.visit(tree)
}
