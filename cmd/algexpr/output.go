package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"algexpr"
	"algexpr/internal/diag"
	"algexpr/internal/eval"
	"algexpr/internal/span"
	"algexpr/internal/token"
)

// ---- output helpers ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

func diagsToSlice(diags []diag.Diagnostic) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"code":     d.Code,
			"severity": d.Severity.String(),
			"message":  d.Message,
			"start":    d.Span.Start,
			"end":      d.Span.End,
		}
	}
	return result
}

// formatValue renders a folded numeric result.
func formatValue(v float64) string {
	return eval.FormatNumber(v)
}

// ---- token output helpers ----

func printTokensText(tokens []token.Token) {
	for _, tok := range tokens {
		if tok.Synthetic() {
			continue // implicit multiplication is not part of the source
		}
		fmt.Printf("%-10s %-12s %s\n", tok.Kind, tok.Lexeme, tok.Span)
	}
}

func printTokensJSON(tokens []token.Token) {
	type tokenJSON struct {
		Kind      string  `json:"kind"`
		Lexeme    string  `json:"lexeme"`
		Value     float64 `json:"value,omitempty"`
		Start     int     `json:"start"`
		End       int     `json:"end"`
		Synthetic bool    `json:"synthetic,omitempty"`
	}

	var toks []tokenJSON
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:      tok.Kind.String(),
			Lexeme:    tok.Lexeme,
			Value:     tok.Value,
			Start:     tok.Span.Start,
			End:       tok.Span.End,
			Synthetic: tok.Synthetic(),
		})
	}
	printJSON(map[string]interface{}{"tokens": toks})
}

// ---- opportunity output helpers ----

func opportunitiesToSlice(opportunities []algexpr.Opportunity) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(opportunities))
	for _, opp := range opportunities {
		switch o := opp.(type) {
		case algexpr.CommonFactor:
			result = append(result, map[string]interface{}{
				"kind":             "CommonFactor",
				"factor":           o.Factor,
				"numeratorSpans":   spansToSlice(o.NumeratorSpans),
				"denominatorSpans": spansToSlice(o.DenominatorSpans),
			})
		case algexpr.LikeTerms:
			result = append(result, map[string]interface{}{
				"kind":     "LikeTerms",
				"variable": o.Variable,
				"exponent": o.Exponent,
				"spans":    spansToSlice(o.Spans),
			})
		case algexpr.ReducibleFraction:
			result = append(result, map[string]interface{}{
				"kind":            "ReducibleFraction",
				"gcd":             o.GCD,
				"numeratorSpan":   spanToMap(o.NumeratorSpan),
				"denominatorSpan": spanToMap(o.DenominatorSpan),
			})
		}
	}
	return result
}

func spansToSlice(spans []span.Span) []map[string]interface{} {
	result := make([]map[string]interface{}, len(spans))
	for i, s := range spans {
		result[i] = spanToMap(s)
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{"start": s.Start, "end": s.End}
}

// printOpportunitiesText renders opportunities with the substrings the
// spans point at. numText is the source of expression/numerator spans;
// denText is the denominator source, empty outside fraction mode.
func printOpportunitiesText(opportunities []algexpr.Opportunity, numText, denText string) {
	if len(opportunities) == 0 {
		fmt.Println("no opportunities")
		return
	}
	for _, opp := range opportunities {
		switch o := opp.(type) {
		case algexpr.CommonFactor:
			fmt.Printf("common factor %d: numerator %s, denominator %s\n",
				o.Factor, spansPreview(numText, o.NumeratorSpans), spansPreview(denText, o.DenominatorSpans))
		case algexpr.LikeTerms:
			name := o.Variable
			if name == "" {
				name = "(constant)"
			}
			fmt.Printf("like terms in %s^%s: %s\n",
				name, eval.FormatNumber(o.Exponent), spansPreview(numText, o.Spans))
		case algexpr.ReducibleFraction:
			fmt.Printf("reducible fraction (gcd %d): %s / %s\n",
				o.GCD, substring(numText, o.NumeratorSpan), substring(numText, o.DenominatorSpan))
		}
	}
}

func spansPreview(text string, spans []span.Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = fmt.Sprintf("%q%s", substring(text, s), s)
	}
	return strings.Join(parts, ", ")
}

// substring extracts the characters a span covers. Spans are rune
// offsets, so the text is decoded first.
func substring(text string, s span.Span) string {
	runes := []rune(text)
	if s.Start < 0 || s.End > len(runes) || s.Start > s.End {
		return ""
	}
	return string(runes[s.Start:s.End])
}
