package segment

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// node is a generic markup tree node. Element nodes keep the raw bytes
// of their start and end tags; text and leaf nodes keep their raw bytes
// verbatim. Re-emitting raw bytes in document order reproduces the
// source exactly, which is what makes templates byte-identical outside
// extracted spans.
type node struct {
	raw      string  // raw start-tag, text, comment, or doctype bytes
	endRaw   string  // raw end-tag bytes for matched element nodes
	tag      string  // lowercase tag name for element nodes
	text     bool    // true for text nodes
	children []*node
}

// voidElements never take an end tag and are treated as leaves.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// parseTree tokenizes markup into a raw-byte tree. The second return is
// false only when the tokenizer fails outright; malformed markup is
// absorbed (stray end tags become leaves, unclosed elements stay open).
func parseTree(content string) (*node, bool) {
	z := html.NewTokenizer(strings.NewReader(content))
	root := &node{}
	stack := []*node{root}

	for {
		tt := z.Next()
		raw := string(z.Raw())
		top := stack[len(stack)-1]

		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return root, true
			}
			return nil, false

		case html.TextToken:
			top.children = append(top.children, &node{raw: raw, text: true})

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			n := &node{raw: raw, tag: tag}
			top.children = append(top.children, n)
			if !voidElements[tag] {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := strings.ToLower(string(name))
			if len(stack) > 1 && top.tag == tag {
				top.endRaw = raw
				stack = stack[:len(stack)-1]
			} else {
				// Stray end tag: pass through as a leaf.
				top.children = append(top.children, &node{raw: raw})
			}

		default:
			// Self-closing tags, comments, doctypes.
			top.children = append(top.children, &node{raw: raw})
		}
	}
}

// visitFrame is one level of the explicit walk stack.
type visitFrame struct {
	n       *node
	idx     int
	ignored bool
}

// visit walks the tree iteratively in document order. Text nodes go
// through onText (with the inherited ignored flag); all other raw bytes
// go through onRaw unchanged.
func visit(root *node, ignoredTags map[string]bool, onRaw func(string), onText func(raw string, ignored bool)) {
	stack := []visitFrame{{n: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.idx < len(f.n.children) {
			child := f.n.children[f.idx]
			f.idx++
			if child.text {
				onText(child.raw, f.ignored)
				continue
			}
			onRaw(child.raw)
			if len(child.children) > 0 || child.endRaw != "" {
				stack = append(stack, visitFrame{
					n:       child,
					ignored: f.ignored || ignoredTags[child.tag],
				})
			}
			continue
		}
		onRaw(f.n.endRaw)
		stack = stack[:len(stack)-1]
	}
}
