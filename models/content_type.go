package models

// ContentType is the category assigned to a captured clipboard entry.
// Exactly one type is derived from the content at capture time.
type ContentType string

const (
	// TypeText is the fallback for content that matches no other rule.
	TypeText ContentType = "text"

	// TypeURL is a single http(s) URL with no whitespace.
	TypeURL ContentType = "url"

	// TypeEmail is a single e-mail address.
	TypeEmail ContentType = "email"

	// TypeCode is content that looks like a source snippet or shell command.
	TypeCode ContentType = "code"

	// TypePhone is a phone number with at least ten digits.
	TypePhone ContentType = "phone"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypeText, TypeURL, TypeEmail, TypeCode, TypePhone:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t ContentType) String() string {
	return string(t)
}
