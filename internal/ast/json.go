package ast

import (
	"encoding/json"
)

// JSONNode is the serializable form of a node. Parents are omitted.
type JSONNode struct {
	Type      string         `json:"type"`
	Nodes     *[]*JSONNode   `json:"nodes,omitempty"`
	Selector  *string        `json:"selector,omitempty"`
	Name      *string        `json:"name,omitempty"`
	Params    *string        `json:"params,omitempty"`
	Prop      *string        `json:"prop,omitempty"`
	Value     *string        `json:"value,omitempty"`
	Important bool           `json:"important,omitempty"`
	Text      *string        `json:"text,omitempty"`
	Raws      map[string]any `json:"raws,omitempty"`
	Source    *JSONSource    `json:"source,omitempty"`
}

// JSONSource names the input by its file or id.
type JSONSource struct {
	Input string    `json:"input,omitempty"`
	Start Position  `json:"start"`
	End   *Position `json:"end,omitempty"`
}

type jsonRawValue struct {
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

// ToJSON converts the subtree rooted at n.
func ToJSON(n Node) *JSONNode {
	out := &JSONNode{Type: n.Kind().String()}
	switch v := n.(type) {
	case *Root:
		out.Nodes = childrenJSON(&v.container)
	case *Rule:
		out.Nodes = childrenJSON(&v.container)
		out.Selector = &v.Selector
	case *AtRule:
		if v.HasBody() {
			out.Nodes = childrenJSON(&v.container)
		}
		out.Name = &v.Name
		out.Params = &v.Params
	case *Decl:
		out.Prop = &v.Prop
		out.Value = &v.Value
		out.Important = v.Important
	case *Comment:
		out.Text = &v.Text
	}
	out.Raws = rawsJSON(n.Raws())
	if src := n.Source(); src != nil {
		js := &JSONSource{Start: src.Start}
		if src.Input != nil {
			js.Input = src.Input.From()
		}
		if src.End != (Position{}) {
			end := src.End
			js.End = &end
		}
		out.Source = js
	}
	return out
}

func childrenJSON(c *container) *[]*JSONNode {
	list := make([]*JSONNode, 0, len(c.nodes))
	for _, child := range c.nodes {
		list = append(list, ToJSON(child))
	}
	return &list
}

func rawsJSON(r *Raws) map[string]any {
	if r.Empty() {
		return nil
	}
	out := make(map[string]any, len(r.slots)+len(r.values)+1)
	for k, v := range r.slots {
		out[k] = v
	}
	for k, v := range r.values {
		out[k] = jsonRawValue(v)
	}
	if v, ok := r.Semicolon(); ok {
		out["semicolon"] = v
	}
	return out
}

func (r *Root) MarshalJSON() ([]byte, error)    { return json.Marshal(ToJSON(r)) }
func (r *Rule) MarshalJSON() ([]byte, error)    { return json.Marshal(ToJSON(r)) }
func (a *AtRule) MarshalJSON() ([]byte, error)  { return json.Marshal(ToJSON(a)) }
func (d *Decl) MarshalJSON() ([]byte, error)    { return json.Marshal(ToJSON(d)) }
func (c *Comment) MarshalJSON() ([]byte, error) { return json.Marshal(ToJSON(c)) }
