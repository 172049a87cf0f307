package catalog

// Answer is the closed set of display labels for a status entry.
type Answer string

const (
	AnswerYes Answer = "YES"
	AnswerNo  Answer = "NO"
)

// AnswerFor returns the label matching a working flag.
func AnswerFor(working bool) Answer {
	if working {
		return AnswerYes
	}
	return AnswerNo
}

// Entry is one fixed status a card can show. The zero value is not useful;
// build entries with NewEntry so the answer always agrees with the working flag.
type Entry struct {
	working bool
	answer  Answer
	message string
	icon    string
}

// NewEntry creates an entry whose answer is derived from working.
func NewEntry(working bool, message, icon string) Entry {
	return Entry{
		working: working,
		answer:  AnswerFor(working),
		message: message,
		icon:    icon,
	}
}

// Working reports whether the entry is an affirmative status.
func (e Entry) Working() bool { return e.working }

// Answer returns YES for working entries and NO otherwise.
func (e Entry) Answer() Answer { return e.answer }

// Message returns the human-readable status line.
func (e Entry) Message() string { return e.message }

// Icon returns the symbolic icon identifier (e.g. "Database").
func (e Entry) Icon() string { return e.icon }
