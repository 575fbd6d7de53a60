package model

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message shown to the shopper after an action.
//
// Key is an i18n message key; Message, when set, is surfaced verbatim instead
// (upstream messages are passed through untranslated).
type Notice struct {
	Level    NoticeLevel `json:"level" example:"error"`
	Blocking bool        `json:"blocking"`
	Key      string      `json:"key,omitempty" example:"notice.insufficient_stock"`
	Message  string      `json:"message,omitempty"`
	Field    string      `json:"field,omitempty"`
} // @name Notice

// NewNotice creates a notice for an i18n key.
func NewNotice(level NoticeLevel, key string) *Notice {
	return &Notice{Level: level, Key: key}
}

// OutcomeStatus is the normalized result class of an engine action.
type OutcomeStatus string

const (
	// OutcomeApplied means the action took effect.
	OutcomeApplied OutcomeStatus = "applied"
	// OutcomeInvalid means local validation blocked the action; no network call was made.
	OutcomeInvalid OutcomeStatus = "invalid"
	// OutcomeRejected means the server refused the action on a business rule.
	OutcomeRejected OutcomeStatus = "rejected"
	// OutcomeAuthRequired means the shopper must sign in first.
	OutcomeAuthRequired OutcomeStatus = "auth_required"
	// OutcomeFailed means transport or parse failure; nothing changed.
	OutcomeFailed OutcomeStatus = "failed"
	// OutcomeSuperseded means a newer mutation for the same line was issued meanwhile
	// and this response was discarded.
	OutcomeSuperseded OutcomeStatus = "superseded"
)

// Valid reports whether s is one of the outcome classes.
func (s OutcomeStatus) Valid() bool {
	switch s {
	case OutcomeApplied, OutcomeInvalid, OutcomeRejected, OutcomeAuthRequired, OutcomeFailed, OutcomeSuperseded:
		return true
	}
	return false
}

// Outcome is what every engine action returns to its caller.
type Outcome struct {
	Status   OutcomeStatus `json:"status" example:"applied"`
	Notice   *Notice       `json:"notice,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
}
