package validation

// FieldRule describes one form field for completeness checking. Rules
// are evaluated in the order given; that order decides which single
// error message is surfaced when several fields are invalid.
type FieldRule struct {
	Hidden       bool
	Required     bool
	Value        string
	ErrorMessage string
}

// FirstIncomplete scans the rules in order and returns the error message
// of the first visible, required field with an empty value. The second
// return value reports whether a violation was found.
func FirstIncomplete(rules []FieldRule) (string, bool) {
	for _, r := range rules {
		if !r.Hidden && r.Required && r.Value == "" {
			return r.ErrorMessage, true
		}
	}
	return "", false
}
