package models

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the inline message or modal shown to the visitor after an action,
// with an optional page to move to afterwards.
type Notice struct {
	Kind            NoticeKind `json:"type"`
	Title           string     `json:"title,omitempty"`
	Message         string     `json:"message"`
	ConfirmText     string     `json:"confirmText,omitempty"`
	Redirect        string     `json:"redirect,omitempty"`
	RedirectAfterMs int64      `json:"redirectAfterMs,omitempty"`
}
