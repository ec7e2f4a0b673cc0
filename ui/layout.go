package ui

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
)

// Layout is the declarative page tree, independent of how it's rendered.
type Layout struct {
	Root *Node `json:"root"`
}

func (l *Layout) JSON() ([]byte, error) {
	return json.Marshal(l)
}

// Find returns the first node with the given id, depth first, or nil.
func (l *Layout) Find(id string) *Node {
	var find func(n *Node) *Node
	find = func(n *Node) *Node {
		if n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}
	return find(l.Root)
}

// Builder appends nodes to the innermost open container.
type Builder struct {
	root  *Node
	stack []*Node
}

func NewBuilder() *Builder {
	root := &Node{Kind: ROOT}
	return &Builder{root: root, stack: []*Node{root}}
}

func (b *Builder) add(n *Node) *Builder {
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, n)
	return b
}

func (b *Builder) Heading(text string, style Style) *Builder {
	return b.add(&Node{Kind: HEADING, Text: text, Style: style})
}

func (b *Builder) Paragraph(text string, style Style) *Builder {
	return b.add(&Node{Kind: PARAGRAPH, Text: text, Style: style})
}

// Markdown renders md to html when the layout is built, blank input adds nothing.
func (b *Builder) Markdown(md string) *Builder {
	if strings.TrimSpace(md) == "" {
		return b
	}
	html := markdown.ToHTML([]byte(md), nil, nil)
	return b.add(&Node{Kind: MARKDOWN, HTML: string(html)})
}

func (b *Builder) Break() *Builder {
	return b.add(&Node{Kind: BREAK})
}

func (b *Builder) Dropdown(id string, options []Option, value, placeholder string, style Style) *Builder {
	return b.add(&Node{
		Kind:        DROPDOWN,
		ID:          id,
		Options:     options,
		Value:       value,
		Placeholder: placeholder,
		Searchable:  true,
		Style:       style,
	})
}

func (b *Builder) RangeSlider(id string, slider Slider) *Builder {
	sort.Slice(slider.Marks, func(i, j int) bool {
		return slider.Marks[i].Value < slider.Marks[j].Value
	})
	return b.add(&Node{Kind: RANGE_SLIDER, ID: id, Slider: &slider})
}

func (b *Builder) Graph(id string) *Builder {
	return b.add(&Node{Kind: GRAPH, ID: id})
}

// Container opens a nested node, everything added until End goes inside it.
func (b *Builder) Container(style Style) *Builder {
	n := &Node{Kind: CONTAINER, Style: style}
	b.add(n)
	b.stack = append(b.stack, n)
	return b
}

func (b *Builder) End() *Builder {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

// Build closes any open containers and returns the layout.
func (b *Builder) Build() *Layout {
	b.stack = b.stack[:1]
	return &Layout{Root: b.root}
}
