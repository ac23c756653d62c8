package stepform

import (
	"maps"
	"regexp"
	"strings"
	"unicode"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

const (
	PersonalDetails Group = "personalDetails"
	AddressDetails  Group = "addressDetails"
	PaymentDetails  Group = "paymentDetails"
)

const (
	FieldFirstName      Field = "firstName"
	FieldLastName       Field = "lastName"
	FieldEmail          Field = "email"
	FieldAddress        Field = "address"
	FieldCity           Field = "city"
	FieldZipCode        Field = "zipCode"
	FieldCardNumber     Field = "cardNumber"
	FieldExpirationDate Field = "expirationDate"
	FieldCVV            Field = "cvv"
)

// ErrorSet maps a field to the message explaining why it failed validation.
// An empty set means the group is valid.
type ErrorSet map[Field]g.String

// Empty reports whether the set holds no failures.
func (e ErrorSet) Empty() bool { return len(e) == 0 }

// Has reports whether the field failed validation.
func (e ErrorSet) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for the field, or an empty string.
func (e ErrorSet) Get(field Field) g.String { return e[field] }

// Fields returns the failing fields in lexical order.
func (e ErrorSet) Fields() g.Slice[Field] {
	fields := g.NewSlice[Field]()
	for field := range e {
		fields.Push(field)
	}

	fields.SortBy(cmp.Cmp)

	return fields
}

// Clone returns a copy that shares nothing with e.
func (e ErrorSet) Clone() ErrorSet {
	if e == nil {
		return ErrorSet{}
	}

	return maps.Clone(e)
}

// Rule is an extra check applied to a non-blank value.
type Rule struct {
	Check   func(value g.String) bool
	Message g.String
}

// FieldSpec declares one required field of a group.
type FieldSpec struct {
	Name   Field
	Label  g.String
	Format *Rule
}

// Schema lists the fields of a group in display order.
type Schema struct {
	Group  Group
	Title  g.String
	Fields g.Slice[FieldSpec]
}

// isSpace matches the runes unicode.IsSpace reports plus the byte order mark.
func isSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

// blank reports whether value is empty once isSpace runes are trimmed.
func blank(value g.String) bool { return strings.TrimFunc(string(value), isSpace) == "" }

// emailPattern excludes the same runes as isSpace: \s, \v, U+0085, \p{Z} and U+FEFF.
var emailPattern = regexp.MustCompile(
	`^[^\s\x{0B}\x{85}\p{Z}\x{FEFF}@]+@[^\s\x{0B}\x{85}\p{Z}\x{FEFF}@]+\.[^\s\x{0B}\x{85}\p{Z}\x{FEFF}@]+$`,
)

// emailFormat accepts a single @ with non-space text on both sides and at least
// one dot after it.
func emailFormat() *Rule {
	return &Rule{
		Check:   func(value g.String) bool { return emailPattern.MatchString(string(value)) },
		Message: "Invalid email format",
	}
}

var schemas = g.Map[Group, Schema]{
	PersonalDetails: {
		Group: PersonalDetails,
		Title: "Personal Details",
		Fields: g.Slice[FieldSpec]{
			{Name: FieldFirstName, Label: "First Name"},
			{Name: FieldLastName, Label: "Last Name"},
			{Name: FieldEmail, Label: "Email", Format: emailFormat()},
		},
	},
	AddressDetails: {
		Group: AddressDetails,
		Title: "Address Details",
		Fields: g.Slice[FieldSpec]{
			{Name: FieldAddress, Label: "Address"},
			{Name: FieldCity, Label: "City"},
			{Name: FieldZipCode, Label: "Zip Code"},
		},
	},
	PaymentDetails: {
		Group: PaymentDetails,
		Title: "Payment Details",
		Fields: g.Slice[FieldSpec]{
			{Name: FieldCardNumber, Label: "Card Number"},
			{Name: FieldExpirationDate, Label: "Expiration Date"},
			{Name: FieldCVV, Label: "CVV"},
		},
	},
}

// SchemaOf returns a copy of the schema of a group. Changing the copy, its
// fields or their rules has no effect on Validate.
func SchemaOf(group Group) (Schema, bool) {
	schema, ok := schemas[group]
	if !ok {
		return Schema{}, false
	}

	schema.Fields = schema.Fields.Clone()
	for i, spec := range schema.Fields {
		if spec.Format != nil {
			rule := *spec.Format
			schema.Fields[i].Format = &rule
		}
	}

	return schema, true
}

// Validate checks values against the schema of its group.
// A value is missing when it is blank after trimming whitespace; the format rule,
// if any, runs only on values that are present.
func (s Schema) Validate(values FieldGroup) ErrorSet {
	errs := ErrorSet{}

	for spec := range s.Fields.Iter() {
		value := values.Get(spec.Name)

		switch {
		case blank(value):
			errs[spec.Name] = spec.Label + " is required"
		case spec.Format != nil && !spec.Format.Check(value):
			errs[spec.Name] = spec.Format.Message
		}
	}

	return errs
}

// Validate checks a field group against the schema registered for its name.
// Groups without a schema are always valid.
func Validate(values FieldGroup) ErrorSet {
	schema, ok := schemas[values.Name()]
	if !ok {
		return ErrorSet{}
	}

	return schema.Validate(values)
}
