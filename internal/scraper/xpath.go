package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// SelectXPath evaluates expr against every node of sel and returns the
// matched element nodes as a goquery selection, in document order.
func SelectXPath(sel *goquery.Selection, expr *xpath.Expr) *goquery.Selection {
	var nodes []*html.Node
	seen := make(map[*html.Node]bool)
	for _, root := range sel.Nodes {
		iter := expr.Select(newHTMLNavigator(root))
		for iter.MoveNext() {
			nav, ok := iter.Current().(*htmlNavigator)
			if !ok || nav.attr != -1 || nav.curr.Type != html.ElementNode {
				continue
			}
			if !seen[nav.curr] {
				seen[nav.curr] = true
				nodes = append(nodes, nav.curr)
			}
		}
	}
	return sel.FindNodes(nodes...)
}

// htmlNavigator implements xpath.NodeNavigator for HTML nodes.
// attr is -1 while positioned on the node itself.
type htmlNavigator struct {
	root, curr *html.Node
	attr       int
}

func newHTMLNavigator(root *html.Node) *htmlNavigator {
	return &htmlNavigator{root: root, curr: root, attr: -1}
}

func (h *htmlNavigator) NodeType() xpath.NodeType {
	switch h.curr.Type {
	case html.DocumentNode:
		return xpath.RootNode
	case html.ElementNode:
		if h.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	case html.TextNode:
		return xpath.TextNode
	default:
		// doctype and comments
		return xpath.CommentNode
	}
}

func (h *htmlNavigator) LocalName() string {
	if h.attr != -1 {
		return h.curr.Attr[h.attr].Key
	}
	if h.curr.Type == html.ElementNode {
		return h.curr.Data
	}
	return ""
}

func (h *htmlNavigator) Prefix() string {
	return ""
}

func (h *htmlNavigator) Value() string {
	switch h.curr.Type {
	case html.TextNode, html.CommentNode:
		return h.curr.Data
	case html.ElementNode, html.DocumentNode:
		if h.attr != -1 {
			return h.curr.Attr[h.attr].Val
		}
		return innerText(h.curr)
	}
	return ""
}

func (h *htmlNavigator) Copy() xpath.NodeNavigator {
	n := *h
	return &n
}

func (h *htmlNavigator) MoveToRoot() {
	h.curr = h.root
	h.attr = -1
}

func (h *htmlNavigator) MoveToParent() bool {
	if h.attr != -1 {
		h.attr = -1
		return true
	}
	if h.curr == h.root || h.curr.Parent == nil {
		return false
	}
	h.curr = h.curr.Parent
	return true
}

func (h *htmlNavigator) MoveToNextAttribute() bool {
	if h.curr.Type != html.ElementNode || h.attr >= len(h.curr.Attr)-1 {
		return false
	}
	h.attr++
	return true
}

func (h *htmlNavigator) MoveToChild() bool {
	if h.attr != -1 || h.curr.FirstChild == nil {
		return false
	}
	h.curr = h.curr.FirstChild
	return true
}

func (h *htmlNavigator) MoveToFirst() bool {
	if h.attr != -1 || h.curr.PrevSibling == nil || h.curr == h.root {
		return false
	}
	for h.curr.PrevSibling != nil {
		h.curr = h.curr.PrevSibling
	}
	return true
}

func (h *htmlNavigator) MoveToNext() bool {
	if h.attr != -1 || h.curr.NextSibling == nil || h.curr == h.root {
		return false
	}
	h.curr = h.curr.NextSibling
	return true
}

func (h *htmlNavigator) MoveToPrevious() bool {
	if h.attr != -1 || h.curr.PrevSibling == nil || h.curr == h.root {
		return false
	}
	h.curr = h.curr.PrevSibling
	return true
}

func (h *htmlNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*htmlNavigator)
	if !ok || o.root != h.root {
		return false
	}
	h.curr = o.curr
	h.attr = o.attr
	return true
}

func (h *htmlNavigator) String() string {
	return h.Value()
}

func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
