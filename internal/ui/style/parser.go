package style

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Load reads and parses a stylesheet file.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse parses a stylesheet. Comma-separated selector lists become one rule per selector.
// Rules with combinators, pseudo-classes or @-rules are skipped.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var selectors []string
	var props map[string]string
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if errors.Is(p.Err(), io.EOF) {
				return sheet, nil
			}
			return sheet, fmt.Errorf("style: %w", p.Err())
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			selectors = splitSelectors(selectorText(data, p.Values()))
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = strings.TrimSpace(tokensString(p.Values()))
			}
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors, props = nil, nil
		}
	}
}

func tokensString(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}

// selectorText joins the ruleset prelude. Depending on the parser state the first token
// is either only in data or repeated at the head of values.
func selectorText(data []byte, values []css.Token) string {
	s := tokensString(values)
	d := string(data)
	if d == "" || d == "{" || strings.HasPrefix(s, d) {
		return s
	}
	return d + s
}

// splitSelectors keeps simple selectors only.
func splitSelectors(s string) []string {
	var out []string
	for _, sel := range strings.Split(s, ",") {
		sel = strings.TrimSpace(sel)
		if sel == "" || strings.ContainsAny(sel, " >+~:[") {
			continue
		}
		body := strings.TrimLeft(sel, ".#")
		if body == "" || strings.ContainsAny(body, ".#") {
			continue
		}
		out = append(out, sel)
	}
	return out
}
