package calc

// ErrorMarker replaces the result of any expression that fails to lex,
// parse or evaluate.
const ErrorMarker = "ERROR"

var defaultEngine = MustNewEngine(Config{NestingLimit: Unlimited, MaxInputLength: Unlimited})

// EvaluateAll evaluates each expression independently with no nesting or
// length limits. See Engine.EvaluateAll.
func EvaluateAll(expressions []string) []string {
	return defaultEngine.EvaluateAll(expressions)
}

// Evaluate evaluates a single expression with no limits.
func Evaluate(source string) (Number, error) {
	return defaultEngine.Evaluate(source)
}

// Parse parses a single expression with no limits.
func Parse(source string) (Node, error) {
	return defaultEngine.Parse(source)
}

// EvaluateAll returns one string per input, in input order: the canonical
// decimal result, or ErrorMarker when that expression failed for any reason.
// A failing expression never affects its neighbours.
func (e *Engine) EvaluateAll(expressions []string) []string {
	results := make([]string, len(expressions))
	for i, expression := range expressions {
		results[i] = e.EvaluateString(expression)
	}
	return results
}

// EvaluateString evaluates one expression and renders it the way
// EvaluateAll does.
func (e *Engine) EvaluateString(source string) string {
	value, err := e.Evaluate(source)
	if err != nil {
		return ErrorMarker
	}
	return value.String()
}
