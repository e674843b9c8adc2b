package searcher

import "github.com/mdcontext/mdcontext-mcp/pkg/types"

// Strategy is the selected search algorithm family. It is a closed set:
// unknown strings are rejected at the parse boundary and never reach
// dispatch logic.
type Strategy int

const (
	// StrategyKeyword scores chunks with the header/content/position
	// heuristic. The only implemented strategy.
	StrategyKeyword Strategy = iota
	// StrategySemantic is reserved for embedding-based search.
	StrategySemantic
	// StrategyHybrid is reserved for combined keyword + semantic ranking.
	StrategyHybrid
)

var strategyNames = map[Strategy]string{
	StrategyKeyword:  "keyword",
	StrategySemantic: "semantic",
	StrategyHybrid:   "hybrid",
}

// ValidStrategies lists the recognized strategy names in a stable order.
func ValidStrategies() []string {
	return []string{"keyword", "semantic", "hybrid"}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy maps a strategy string to its variant. The empty string
// defaults to keyword. Unrecognized values return InvalidStrategyError.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "keyword":
		return StrategyKeyword, nil
	case "semantic":
		return StrategySemantic, nil
	case "hybrid":
		return StrategyHybrid, nil
	default:
		return 0, &types.InvalidStrategyError{Strategy: s, Valid: ValidStrategies()}
	}
}
