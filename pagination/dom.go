package pagination

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FindByID returns the first element below n with the given id attribute.
func FindByID(n *html.Node, id string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// CountByID counts elements carrying id. Valid documents have at most one.
func CountByID(n *html.Node, id string) int {
	count := 0
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += CountByID(c, id)
	}
	return count
}

func HasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		attrs = append(attrs, attr)
	}
	n.Attr = attrs
}

func element(a atom.Atom, id, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if id != "" {
		setAttr(n, "id", id)
	}
	if class != "" {
		setAttr(n, "class", class)
	}
	return n
}
