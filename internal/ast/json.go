package ast

import "algexpr/internal/span"

// NodeToMap converts an AST node to a map suitable for JSON
// serialization. This produces a tagged-union structure: every node has
// a "kind" field, and a "span" field when the node has a source span.
func NodeToMap(node Expr) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Number:
		return m("Number", n.Sp, "value", n.Value)
	case *Variable:
		result := m("Variable", n.Sp, "name", n.Name)
		if n.Coefficient != 1 {
			result["coefficient"] = n.Coefficient
		}
		return result
	case *Binary:
		return m("Binary", n.Sp,
			"op", n.Op.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *Unary:
		return m("Unary", n.Sp, "operand", NodeToMap(n.Operand))
	case *Power:
		return m("Power", n.Sp,
			"base", NodeToMap(n.Base),
			"exponent", n.Exponent)
	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// m builds a node map from a kind, an optional span, and key/value pairs.
func m(kind string, sp *span.Span, kv ...interface{}) map[string]interface{} {
	result := map[string]interface{}{"kind": kind}
	if sp != nil {
		result["span"] = map[string]interface{}{"start": sp.Start, "end": sp.End}
	}
	for i := 0; i+1 < len(kv); i += 2 {
		result[kv[i].(string)] = kv[i+1]
	}
	return result
}
