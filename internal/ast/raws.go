package ast

import (
	"maps"
	"slices"
)

// Raw slot names.
const (
	RawBefore    = "before"
	RawAfter     = "after"
	RawBetween   = "between"
	RawAfterName = "afterName"
	RawLeft      = "left"
	RawRight     = "right"
	RawImportant = "important"
	RawIndent    = "indent"
)

// RawValue keeps the exact text of a field next to its cleaned value.
// The raw text is printed only while the field still equals Value.
type RawValue struct {
	Value string
	Raw   string
}

// Raws holds the literal formatting of a node.
type Raws struct {
	slots     map[string]string
	values    map[string]RawValue
	semicolon int8 // 0 не задано, 1 есть, -1 нет
}

// Get returns the slot and whether it is set.
func (r *Raws) Get(name string) (string, bool) {
	v, ok := r.slots[name]
	return v, ok
}

// Set stores a slot.
func (r *Raws) Set(name, value string) {
	if r.slots == nil {
		r.slots = make(map[string]string, 4)
	}
	r.slots[name] = value
}

// Has reports whether the slot is set.
func (r *Raws) Has(name string) bool {
	_, ok := r.slots[name]
	return ok
}

// Delete unsets the slot.
func (r *Raws) Delete(name string) {
	delete(r.slots, name)
}

// Names returns the set slot names in sorted order.
func (r *Raws) Names() []string {
	return slices.Sorted(maps.Keys(r.slots))
}

// Semicolon reports whether the last child was followed by ';' and whether
// that is known at all.
func (r *Raws) Semicolon() (value, ok bool) {
	return r.semicolon > 0, r.semicolon != 0
}

func (r *Raws) SetSemicolon(v bool) {
	if v {
		r.semicolon = 1
	} else {
		r.semicolon = -1
	}
}

func (r *Raws) ClearSemicolon() {
	r.semicolon = 0
}

// Value returns the {value, raw} pair of a field.
func (r *Raws) Value(field string) (RawValue, bool) {
	v, ok := r.values[field]
	return v, ok
}

func (r *Raws) SetValue(field string, v RawValue) {
	if r.values == nil {
		r.values = make(map[string]RawValue, 1)
	}
	r.values[field] = v
}

func (r *Raws) DeleteValue(field string) {
	delete(r.values, field)
}

// Empty reports whether nothing is set.
func (r *Raws) Empty() bool {
	return len(r.slots) == 0 && len(r.values) == 0 && r.semicolon == 0
}

// cloneStripped copies r without the spacing a clone must re-detect.
func (r *Raws) cloneStripped() Raws {
	out := Raws{
		slots:  maps.Clone(r.slots),
		values: maps.Clone(r.values),
	}
	delete(out.slots, RawBefore)
	delete(out.slots, RawAfter)
	delete(out.slots, RawBetween)
	return out
}

// StringifyRaw returns the raw text of field when the node still carries the
// value it was parsed with, otherwise the current value.
func StringifyRaw(n Node, field string) string {
	value := fieldValue(n, field)
	if rv, ok := n.Raws().Value(field); ok && rv.Value == value {
		return rv.Raw
	}
	return value
}

func fieldValue(n Node, field string) string {
	switch v := n.(type) {
	case *Rule:
		if field == "selector" {
			return v.Selector
		}
	case *AtRule:
		switch field {
		case "name":
			return v.Name
		case "params":
			return v.Params
		}
	case *Decl:
		switch field {
		case "prop":
			return v.Prop
		case "value":
			return v.Value
		}
	case *Comment:
		if field == "text" {
			return v.Text
		}
	}
	return ""
}
