package stepform

import (
	"encoding/json"
	"maps"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// FieldGroup holds the values of one group. It is immutable: with returns a new
// group and leaves the receiver as it was, so groups may be shared freely.
type FieldGroup struct {
	name   Group
	fields g.Slice[Field]
	values g.Map[Field, g.String]
}

func newFieldGroup(group Group) FieldGroup {
	fg := FieldGroup{name: group, values: g.NewMap[Field, g.String]()}

	if schema, ok := schemas[group]; ok {
		for spec := range schema.Fields.Iter() {
			fg.fields.Push(spec.Name)
			fg.values[spec.Name] = ""
		}
	}

	return fg
}

// Name returns the group name.
func (fg FieldGroup) Name() Group { return fg.name }

// Fields returns the field names in display order.
func (fg FieldGroup) Fields() g.Slice[Field] { return fg.fields.Clone() }

// Get returns the value of a field, or an empty string for unknown fields.
func (fg FieldGroup) Get(field Field) g.String { return fg.values[field] }

// Has reports whether the field belongs to the group.
func (fg FieldGroup) Has(field Field) bool {
	_, ok := fg.values[field]
	return ok
}

// Values returns a copy of the field values.
func (fg FieldGroup) Values() g.Map[Field, g.String] { return maps.Clone(fg.values) }

func (fg FieldGroup) with(field Field, value g.String) (FieldGroup, error) {
	if !fg.Has(field) {
		return fg, &ErrUnknownField{Group: fg.name, Field: field}
	}

	values := maps.Clone(fg.values)
	values[field] = value

	return FieldGroup{name: fg.name, fields: fg.fields, values: values}, nil
}

// MarshalJSON writes the values as an object with keys in display order.
func (fg FieldGroup) MarshalJSON() ([]byte, error) {
	b := g.NewBuilder()
	b.WriteByte('{')

	for i, field := range fg.fields {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(string(field))
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(string(fg.values[field]))
		if err != nil {
			return nil, err
		}

		b.WriteString(g.String(key))
		b.WriteByte(':')
		b.WriteString(g.String(value))
	}

	b.WriteByte('}')

	return []byte(b.String()), nil
}

// MarshalYAML writes the values as a mapping with keys in display order.
func (fg FieldGroup) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for field := range fg.fields.Iter() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(field)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(fg.values[field])},
		)
	}

	return node, nil
}

// Record aggregates the three field groups of a session.
// Each group is owned separately; updating one never touches the others.
type Record struct {
	personal FieldGroup
	address  FieldGroup
	payment  FieldGroup
}

var groups = g.Slice[Group]{PersonalDetails, AddressDetails, PaymentDetails}

// Groups returns the record's group names in step order.
func Groups() g.Slice[Group] { return groups.Clone() }

// NewRecord returns a record with every field empty.
func NewRecord() Record {
	return Record{
		personal: newFieldGroup(PersonalDetails),
		address:  newFieldGroup(AddressDetails),
		payment:  newFieldGroup(PaymentDetails),
	}
}

// Group returns the named group. Unknown names yield an empty group.
func (r Record) Group(group Group) FieldGroup {
	if fg := r.ref(group); fg != nil {
		return *fg
	}

	return FieldGroup{name: group}
}

// Groups returns the groups in step order.
func (r Record) Groups() g.Slice[FieldGroup] {
	return g.SliceOf(r.personal, r.address, r.payment)
}

// Get returns a single value.
func (r Record) Get(group Group, field Field) g.String {
	return r.Group(group).Get(field)
}

func (r *Record) ref(group Group) *FieldGroup {
	switch group {
	case PersonalDetails:
		return &r.personal
	case AddressDetails:
		return &r.address
	case PaymentDetails:
		return &r.payment
	default:
		return nil
	}
}

func (r Record) with(group Group, field Field, value g.String) (Record, error) {
	fg := r.ref(group)
	if fg == nil {
		return r, &ErrUnknownGroup{Group: group}
	}

	updated, err := fg.with(field, value)
	if err != nil {
		return r, err
	}

	*fg = updated

	return r, nil
}

// MarshalJSON writes {"personalDetails":{...},"addressDetails":{...},"paymentDetails":{...}}.
func (r Record) MarshalJSON() ([]byte, error) {
	b := g.NewBuilder()
	b.WriteByte('{')

	for i, fg := range r.Groups() {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(string(fg.name))
		if err != nil {
			return nil, err
		}

		value, err := fg.MarshalJSON()
		if err != nil {
			return nil, err
		}

		b.WriteString(g.String(key))
		b.WriteByte(':')
		b.WriteString(g.String(value))
	}

	b.WriteByte('}')

	return []byte(b.String()), nil
}

// MarshalYAML writes the groups as nested mappings in step order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for fg := range r.Groups().Iter() {
		value, err := fg.MarshalYAML()
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(fg.name)},
			value.(*yaml.Node),
		)
	}

	return node, nil
}
