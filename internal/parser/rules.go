package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/raihanpk/kliping/internal/config"
)

// findAll returns the nodes matching a rule under root, in document order.
// CSS rules go through goquery, XPath rules through htmlquery; both operate
// on the same parsed tree so a selector config can mix the two freely.
func findAll(root *html.Node, rule config.Rule) ([]*html.Node, error) {
	switch rule.Type {
	case "", "css":
		return goquery.NewDocumentFromNode(root).Find(rule.Selector).Nodes, nil
	case "xpath":
		nodes, err := htmlquery.QueryAll(root, rule.Selector)
		if err != nil {
			return nil, fmt.Errorf("xpath %q: %w", rule.Selector, err)
		}
		return nodes, nil
	default:
		return nil, fmt.Errorf("unknown rule type %q", rule.Type)
	}
}

// extract applies a rule under root and returns the first match's value:
// the named attribute if the rule has one, the trimmed inner text otherwise.
func extract(root *html.Node, rule config.Rule) (string, bool) {
	nodes, err := findAll(root, rule)
	if err != nil || len(nodes) == 0 {
		return "", false
	}

	n := nodes[0]
	if rule.Attribute != "" && rule.Attribute != "text" {
		for _, attr := range n.Attr {
			if attr.Key == rule.Attribute {
				return strings.TrimSpace(attr.Val), true
			}
		}
		return "", false
	}
	return strings.TrimSpace(htmlquery.InnerText(n)), true
}
