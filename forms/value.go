package forms

import (
	"io"
	"strconv"
)

// Kind discriminates the tagged Value union
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindFile
	KindChoice
)

// FileRef is a handle to an attached file. Open yields fresh readers so the
// content can be consumed more than once (validation sniff, then upload).
type FileRef struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// Value is a tagged union of the field value shapes a form can hold:
// free text, a number, an attached file, or a pick from a fixed set.
type Value struct {
	kind   Kind
	text   string
	number float64
	file   *FileRef
	choice string
}

// Text wraps a string as a text value
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps a float as a numeric value
func Number(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// File wraps a file handle as a file value. A nil ref means "nothing attached".
func File(ref *FileRef) Value {
	return Value{kind: KindFile, file: ref}
}

// Choice wraps a selection from a fixed option set
func Choice(s string) Value {
	return Value{kind: KindChoice, choice: s}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) Text() string    { return v.text }
func (v Value) Number() float64 { return v.number }
func (v Value) File() *FileRef  { return v.file }
func (v Value) Choice() string  { return v.choice }

// IsEmpty reports whether the value carries no content for its kind
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return v.text == ""
	case KindFile:
		return v.file == nil
	case KindChoice:
		return v.choice == ""
	default:
		return false
	}
}

// String renders the value for display and persistence payloads
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindFile:
		if v.file == nil {
			return ""
		}
		return v.file.Name
	case KindChoice:
		return v.choice
	}
	return ""
}
