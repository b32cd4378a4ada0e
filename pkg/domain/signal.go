package domain

import "github.com/go-faster/jx"

// SignalKind tags the variant held by a Signal.
type SignalKind string

const (
	// SignalShowResult displays a validated URL.
	SignalShowResult SignalKind = "SHOW_RESULT"
	// SignalShowError displays an error message.
	SignalShowError SignalKind = "SHOW_ERROR"
	// SignalClear hides whatever is displayed.
	SignalClear SignalKind = "CLEAR"
)

// Signal is the only data the scan core hands to presentation. Result and
// error displays are mutually exclusive: each signal replaces the previous one.
type Signal struct {
	Kind SignalKind
	// URL is set for SignalShowResult.
	URL string
	// Message is set for SignalShowError.
	Message string
	// Code is the semantic error kind behind a SignalShowError, if any.
	Code string
}

// ShowResult returns a signal displaying url.
func ShowResult(url string) Signal { return Signal{Kind: SignalShowResult, URL: url} }

// ShowError returns a signal displaying message, tagged with code.
func ShowError(code, message string) Signal {
	return Signal{Kind: SignalShowError, Code: code, Message: message}
}

// Clear returns a signal hiding the current display.
func Clear() Signal { return Signal{Kind: SignalClear} }

// Encode writes s as a JSON object.
func (s Signal) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(string(s.Kind))
	if s.URL != "" {
		e.FieldStart("url")
		e.Str(s.URL)
	}
	if s.Message != "" {
		e.FieldStart("message")
		e.Str(s.Message)
	}
	if s.Code != "" {
		e.FieldStart("code")
		e.Str(s.Code)
	}
	e.ObjEnd()
}

// Notification is a best-effort, transient message (title plus optional body).
// It is never stored.
type Notification struct {
	Title string
	Body  string
}

// Encode writes n as a JSON object.
func (n Notification) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("title")
	e.Str(n.Title)
	if n.Body != "" {
		e.FieldStart("body")
		e.Str(n.Body)
	}
	e.ObjEnd()
}
