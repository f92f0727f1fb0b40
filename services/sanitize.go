package services

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy strips anything beyond basic user-generated-content markup
var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeRichText cleans free-text fields that may carry HTML (case
// descriptions, communication detail) before they are persisted
func SanitizeRichText(input string) string {
	return ugcPolicy.Sanitize(input)
}
