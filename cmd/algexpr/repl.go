package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"algexpr"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// ---- repl command ----

func cmdRepl() {
	// Determine history file path (~/.algexpr_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".algexpr_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + "algexpr> " + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s%salgexpr REPL%s %s(enter an expression, or num/den for a fraction; 'exit' or Ctrl+D to quit)%s\n\n",
		colorBold, colorCyan, colorReset, colorGray, colorReset)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				// Show hint instead of exiting
				fmt.Fprintf(rl.Stdout(), "\n%s(use 'exit' or Ctrl+D to quit)%s\n", colorGray, colorReset)
				continue
			}
			// EOF (Ctrl+D) or other error → exit
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		// "num / den" with a bare top-level slash between two full
		// expressions still parses as one expression, so fraction mode
		// uses an explicit "//" separator.
		if num, den, ok := strings.Cut(input, "//"); ok {
			replFraction(rl.Stdout(), rl.Stderr(), strings.TrimSpace(num), strings.TrimSpace(den))
			continue
		}

		replExpression(rl.Stdout(), rl.Stderr(), input)
	}
}

// replExpression shows the simplified form, the folded value when the
// expression is arithmetic-only, and any opportunities.
func replExpression(out, errOut io.Writer, text string) {
	expr, err := algexpr.Parse(text)
	if err != nil {
		fmt.Fprintf(errOut, "%s%v%s\n", colorRed, err, colorReset)
		return
	}

	simplified := algexpr.AstToString(algexpr.Simplify(expr))
	fmt.Fprintf(out, "%s= %s%s\n", colorCyan, simplified, colorReset)
	if v, ok := algexpr.Evaluate(expr); ok && formatValue(v) != simplified {
		fmt.Fprintf(out, "%svalue: %s%s\n", colorGray, formatValue(v), colorReset)
	}

	printReplOpportunities(out, algexpr.AnalyzeExpression(expr), text, "")
}

// replFraction analyzes numerator and denominator as a displayed
// fraction.
func replFraction(out, errOut io.Writer, numText, denText string) {
	numExpr, err := algexpr.Parse(numText)
	if err != nil {
		fmt.Fprintf(errOut, "%snumerator: %v%s\n", colorRed, err, colorReset)
		return
	}
	denExpr, err := algexpr.Parse(denText)
	if err != nil {
		fmt.Fprintf(errOut, "%sdenominator: %v%s\n", colorRed, err, colorReset)
		return
	}
	printReplOpportunities(out, algexpr.AnalyzeFraction(numExpr, denExpr), numText, denText)
}

func printReplOpportunities(out io.Writer, opportunities []algexpr.Opportunity, numText, denText string) {
	for _, opp := range opportunities {
		switch o := opp.(type) {
		case algexpr.CommonFactor:
			fmt.Fprintf(out, "%shint: common factor %d across the fraction%s\n", colorGray, o.Factor, colorReset)
		case algexpr.LikeTerms:
			fmt.Fprintf(out, "%shint: %d like terms can be collected%s\n", colorGray, len(o.Spans), colorReset)
		case algexpr.ReducibleFraction:
			fmt.Fprintf(out, "%shint: %s/%s can be reduced by %d%s\n", colorGray,
				substring(numText, o.NumeratorSpan), substring(numText, o.DenominatorSpan), o.GCD, colorReset)
		}
	}
}
