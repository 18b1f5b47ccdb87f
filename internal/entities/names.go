package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Bounds enforced by the text value types. Lengths are counted in characters,
// which is also how the varchar columns backing them are sized.
const (
	MaxPersonNameLength = 128
	MaxBookNameLength   = 64
	MaxEditorNameLength = 64
	PersonDocumentSize  = 11
)

// textRule describes the constraint behind one text value type. The charset
// is checked before the length, so a disallowed character is reported as
// ErrInvalidCharset no matter how long the input is.
type textRule struct {
	name    string
	max     int
	exact   int
	allowed func(r rune) bool
}

func (tr textRule) check(raw string) error {
	if !utf8.ValidString(raw) {
		return &ValidationError{Field: tr.name, Err: ErrInvalidCharset}
	}
	if tr.allowed != nil {
		for _, r := range raw {
			if !tr.allowed(r) {
				return &ValidationError{Field: tr.name, Err: ErrInvalidCharset}
			}
		}
	}
	n := utf8.RuneCountInString(raw)
	if tr.exact > 0 && n != tr.exact {
		return &ValidationError{Field: tr.name, Err: ErrWrongSize}
	}
	if tr.max > 0 && n > tr.max {
		return &ValidationError{Field: tr.name, Err: ErrTooLong}
	}
	return nil
}

var (
	personNameRule = textRule{
		name: "person_name",
		max:  MaxPersonNameLength,
		allowed: func(r rune) bool {
			return r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		},
	}
	bookNameRule = textRule{
		name: "book_name",
		max:  MaxBookNameLength,
	}
	editorNameRule = textRule{
		name:    "editor_name",
		max:     MaxEditorNameLength,
		allowed: func(r rune) bool { return r < utf8.RuneSelf },
	}
	personDocumentRule = textRule{
		name:    "person_document",
		exact:   PersonDocumentSize,
		allowed: func(r rune) bool { return r >= '0' && r <= '9' },
	}
)

// scanText accepts the representations database drivers use for text columns.
func scanText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("unexpected NULL")
	default:
		return "", fmt.Errorf("unsupported type %T", src)
	}
}

func unmarshalText(data []byte) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

// PersonName is a name made of ASCII letters and spaces, at most 128 characters.
type PersonName struct {
	value string
}

func NewPersonName(raw string) (PersonName, error) {
	if err := personNameRule.check(raw); err != nil {
		return PersonName{}, err
	}
	return PersonName{value: raw}, nil
}

func (n PersonName) String() string { return n.value }

func (n PersonName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *PersonName) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalText(data)
	if err != nil {
		return err
	}
	parsed, err := NewPersonName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n PersonName) Value() (driver.Value, error) { return n.value, nil }

func (n *PersonName) Scan(src any) error {
	raw, err := scanText(src)
	if err != nil {
		return corrupt(personNameRule.name, err)
	}
	parsed, err := NewPersonName(raw)
	if err != nil {
		return corrupt(personNameRule.name, err)
	}
	*n = parsed
	return nil
}

// BookName is a free-form title of at most 64 characters.
type BookName struct {
	value string
}

func NewBookName(raw string) (BookName, error) {
	if err := bookNameRule.check(raw); err != nil {
		return BookName{}, err
	}
	return BookName{value: raw}, nil
}

func (n BookName) String() string { return n.value }

func (n BookName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *BookName) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalText(data)
	if err != nil {
		return err
	}
	parsed, err := NewBookName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n BookName) Value() (driver.Value, error) { return n.value, nil }

func (n *BookName) Scan(src any) error {
	raw, err := scanText(src)
	if err != nil {
		return corrupt(bookNameRule.name, err)
	}
	parsed, err := NewBookName(raw)
	if err != nil {
		return corrupt(bookNameRule.name, err)
	}
	*n = parsed
	return nil
}

// EditorName is an ASCII-only publisher name of at most 64 characters.
type EditorName struct {
	value string
}

func NewEditorName(raw string) (EditorName, error) {
	if err := editorNameRule.check(raw); err != nil {
		return EditorName{}, err
	}
	return EditorName{value: raw}, nil
}

func (n EditorName) String() string { return n.value }

func (n EditorName) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

func (n *EditorName) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalText(data)
	if err != nil {
		return err
	}
	parsed, err := NewEditorName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n EditorName) Value() (driver.Value, error) { return n.value, nil }

func (n *EditorName) Scan(src any) error {
	raw, err := scanText(src)
	if err != nil {
		return corrupt(editorNameRule.name, err)
	}
	parsed, err := NewEditorName(raw)
	if err != nil {
		return corrupt(editorNameRule.name, err)
	}
	*n = parsed
	return nil
}

// PersonDocument is an 11-digit national identification number.
type PersonDocument struct {
	value string
}

func NewPersonDocument(raw string) (PersonDocument, error) {
	if err := personDocumentRule.check(raw); err != nil {
		return PersonDocument{}, err
	}
	return PersonDocument{value: raw}, nil
}

func (d PersonDocument) String() string { return d.value }

func (d PersonDocument) MarshalJSON() ([]byte, error) { return json.Marshal(d.value) }

func (d *PersonDocument) UnmarshalJSON(data []byte) error {
	raw, err := unmarshalText(data)
	if err != nil {
		return err
	}
	parsed, err := NewPersonDocument(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d PersonDocument) Value() (driver.Value, error) { return d.value, nil }

func (d *PersonDocument) Scan(src any) error {
	raw, err := scanText(src)
	if err != nil {
		return corrupt(personDocumentRule.name, err)
	}
	parsed, err := NewPersonDocument(raw)
	if err != nil {
		return corrupt(personDocumentRule.name, err)
	}
	*d = parsed
	return nil
}
