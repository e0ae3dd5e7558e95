// Command algexpr is the CLI entry point for the expression engine.
//
// Usage:
//
//	algexpr tokens <expr>            Print tokens
//	algexpr tokens <expr> --json     Print tokens as JSON
//	algexpr parse <expr>             Print AST as JSON
//	algexpr eval <expr>              Fold an expression to a number
//	algexpr simplify <expr>          Print the simplified form
//	algexpr analyze <expr> [--json]  Report simplification opportunities
//	algexpr fraction <num> <den> [--json]
//	                                 Report common factors of a fraction
//	algexpr repl                     Start interactive REPL
package main

import (
	"fmt"
	"os"

	"algexpr"
	"algexpr/internal/ast"
	"algexpr/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "tokens":
		cmdTokens(argAt(2), hasFlag("--json"))
	case "parse":
		cmdParse(argAt(2))
	case "eval":
		cmdEval(argAt(2))
	case "simplify":
		cmdSimplify(argAt(2))
	case "analyze":
		cmdAnalyze(argAt(2), hasFlag("--json"))
	case "fraction":
		cmdFraction(argAt(2), argAt(3), hasFlag("--json"))
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  algexpr tokens <expr> [--json]         Tokenize and print tokens")
	fmt.Fprintln(os.Stderr, "  algexpr parse <expr>                   Parse and print AST (JSON)")
	fmt.Fprintln(os.Stderr, "  algexpr eval <expr>                    Fold an expression to a number")
	fmt.Fprintln(os.Stderr, "  algexpr simplify <expr>                Print the simplified form")
	fmt.Fprintln(os.Stderr, "  algexpr analyze <expr> [--json]        Report simplification opportunities")
	fmt.Fprintln(os.Stderr, "  algexpr fraction <num> <den> [--json]  Report common factors of a fraction")
	fmt.Fprintln(os.Stderr, "  algexpr repl                           Start interactive REPL")
}

// argAt returns the positional argument at index i, exiting with usage
// help when it is missing. Flags are not positional arguments.
func argAt(i int) string {
	var positional []string
	for _, arg := range os.Args[2:] {
		if arg == "--json" {
			continue
		}
		positional = append(positional, arg)
	}
	if i-2 >= len(positional) {
		fmt.Fprintln(os.Stderr, "error: missing expression argument")
		usage()
		os.Exit(1)
	}
	return positional[i-2]
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[2:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// ---- tokens command ----

func cmdTokens(text string, jsonMode bool) {
	tokens := algexpr.Tokenize(text)
	if jsonMode {
		printTokensJSON(tokens)
	} else {
		printTokensText(tokens)
	}
}

// ---- parse command ----

func cmdParse(text string) {
	expr, diags := parser.ParseText(text)

	output := map[string]interface{}{
		"ast":         ast.NodeToMap(expr),
		"diagnostics": diagsToSlice(diags),
	}
	printJSON(output)

	if len(diags) > 0 {
		os.Exit(1)
	}
}

// ---- eval command ----

func cmdEval(text string) {
	expr, err := algexpr.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if v, ok := algexpr.Evaluate(expr); ok {
		fmt.Println(formatValue(v))
		return
	}
	fmt.Printf("symbolic: %s\n", algexpr.AstToString(algexpr.Simplify(expr)))
}

// ---- simplify command ----

func cmdSimplify(text string) {
	expr, err := algexpr.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(algexpr.AstToString(algexpr.Simplify(expr)))
}

// ---- analyze command ----

func cmdAnalyze(text string, jsonMode bool) {
	expr, err := algexpr.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opportunities := algexpr.AnalyzeExpression(expr)
	if jsonMode {
		printJSON(opportunitiesToSlice(opportunities))
	} else {
		printOpportunitiesText(opportunities, text, "")
	}
}

// ---- fraction command ----

func cmdFraction(numText, denText string, jsonMode bool) {
	numExpr, err := algexpr.Parse(numText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "numerator: %v\n", err)
		os.Exit(1)
	}
	denExpr, err := algexpr.Parse(denText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "denominator: %v\n", err)
		os.Exit(1)
	}
	if jsonMode {
		printJSON(opportunitiesToSlice(algexpr.AnalyzeFraction(numExpr, denExpr)))
		return
	}
	// Text mode prints per source string, since numerator and
	// denominator spans index into different strings.
	var common []algexpr.Opportunity
	for _, opp := range algexpr.AnalyzeFraction(numExpr, denExpr) {
		if _, ok := opp.(algexpr.CommonFactor); ok {
			common = append(common, opp)
		}
	}
	printOpportunitiesText(common, numText, denText)
	fmt.Println("numerator:")
	printOpportunitiesText(algexpr.AnalyzeExpression(numExpr), numText, "")
	fmt.Println("denominator:")
	printOpportunitiesText(algexpr.AnalyzeExpression(denExpr), denText, "")
}
