package forms

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Rule checks a single field value and returns a human-readable message on
// failure, or the empty string when the value passes. Rules are pure functions
// of the value alone; cross-field and store-dependent checks do not belong here.
type Rule func(v Value) string

// Required fails on empty text, a missing file, or an empty choice
func Required(msg string) Rule {
	return func(v Value) string {
		if v.Kind() == KindText && strings.TrimSpace(v.Text()) == "" {
			return msg
		}
		if v.IsEmpty() {
			return msg
		}
		return ""
	}
}

// MinLen fails when the trimmed text is shorter than n runes
func MinLen(n int, msg string) Rule {
	return func(v Value) string {
		if len([]rune(strings.TrimSpace(v.Text()))) < n {
			return msg
		}
		return ""
	}
}

// Email accepts local@domain with a plausible domain part. This is a shape
// check, not an RFC parser: the form never verifies deliverability.
func Email(msg string) Rule {
	return func(v Value) string {
		addr := strings.TrimSpace(v.Text())
		at := strings.LastIndex(addr, "@")
		if at <= 0 || at == len(addr)-1 {
			return msg
		}
		domain := addr[at+1:]
		if !strings.Contains(domain, ".") ||
			strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") ||
			strings.ContainsAny(addr, " \t") {
			return msg
		}
		return ""
	}
}

// Digits fails unless the trimmed text is all digits and at least min long
func Digits(min int, msg string) Rule {
	return func(v Value) string {
		s := strings.TrimSpace(v.Text())
		if len(s) < min {
			return msg
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return msg
			}
		}
		return ""
	}
}

// ParseableDate fails unless the trimmed text parses as YYYY-MM-DD.
// Generic layout parsing only; no locale or calendar awareness is promised.
func ParseableDate(msg string) Rule {
	return func(v Value) string {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(v.Text())); err != nil {
			return msg
		}
		return ""
	}
}

// PositiveNumber fails when a numeric value is zero or negative
func PositiveNumber(msg string) Rule {
	return func(v Value) string {
		if v.Number() <= 0 {
			return msg
		}
		return ""
	}
}

// OneOf fails unless the choice is a member of the given option set
func OneOf(options []string, msg string) Rule {
	return func(v Value) string {
		for _, opt := range options {
			if v.Choice() == opt {
				return ""
			}
		}
		return msg
	}
}

// FileRequired fails when no file is attached
func FileRequired(msg string) Rule {
	return func(v Value) string {
		if v.File() == nil {
			return msg
		}
		return ""
	}
}

// FileMaxSize fails when the attached file exceeds maxBytes.
// An absent file passes; presence is FileRequired's concern.
func FileMaxSize(maxBytes int64, msg string) Rule {
	return func(v Value) string {
		if ref := v.File(); ref != nil && ref.Size > maxBytes {
			return msg
		}
		return ""
	}
}

// FileTypes fails when the attached file's extension is not in the allow-list.
// An absent file passes.
func FileTypes(extensions []string, msg string) Rule {
	return func(v Value) string {
		ref := v.File()
		if ref == nil {
			return ""
		}
		ext := strings.ToLower(filepath.Ext(ref.Name))
		for _, allowed := range extensions {
			if ext == allowed {
				return ""
			}
		}
		return msg
	}
}
