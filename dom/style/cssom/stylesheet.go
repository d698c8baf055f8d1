package cssom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Match is a rule together with the elements it applies to.
type Match struct {
	Rule  Rule
	Nodes []*html.Node
}

// MatchRules matches every rule of sheet against the document tree under
// root. Rules which do not select any element are included with an empty
// node list. An invalid selector results in an error.
func MatchRules(root *html.Node, sheet StyleSheet) ([]Match, error) {
	rules := sheet.Rules()
	matches := make([]Match, 0, len(rules))
	for _, r := range rules {
		sel, err := cascadia.Compile(r.Selector())
		if err != nil {
			tracer().Errorf("cssom: cannot compile selector %q", r.Selector())
			return nil, fmt.Errorf("invalid selector %q: %w", r.Selector(), err)
		}
		nodes := sel.MatchAll(root)
		tracer().Debugf("cssom: %q matches %d element(s)", r.Selector(), len(nodes))
		matches = append(matches, Match{Rule: r, Nodes: nodes})
	}
	return matches, nil
}

// RulesFor returns the rules of sheet which apply to element n.
func RulesFor(n *html.Node, sheet StyleSheet) ([]Rule, error) {
	var rules []Rule
	for _, r := range sheet.Rules() {
		sel, err := cascadia.Compile(r.Selector())
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", r.Selector(), err)
		}
		if sel.Match(n) {
			rules = append(rules, r)
		}
	}
	return rules, nil
}
