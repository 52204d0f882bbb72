package domain

// WidgetKind names one of the interactive demos.
type WidgetKind string

const (
	WidgetMathGame  WidgetKind = "math"
	WidgetQuiz      WidgetKind = "quiz"
	WidgetChat      WidgetKind = "chat"
	WidgetTextbooks WidgetKind = "textbooks"
	WidgetVideos    WidgetKind = "videos"
)

// WidgetKinds lists every kind in display order.
var WidgetKinds = []WidgetKind{WidgetMathGame, WidgetQuiz, WidgetChat, WidgetTextbooks, WidgetVideos}

// ParseWidgetKind returns the kind named by s.
func ParseWidgetKind(s string) (WidgetKind, error) {
	for _, k := range WidgetKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", NewUnknownWidgetError(s)
}

// ActionType is a discrete user action delivered to a widget.
type ActionType string

const (
	ActionStart      ActionType = "start"
	ActionSelect     ActionType = "select"
	ActionAdvance    ActionType = "advance"
	ActionReset      ActionType = "reset"
	ActionSubmit     ActionType = "submit"
	ActionOpen       ActionType = "open"
	ActionBack       ActionType = "back"
	ActionTogglePlay ActionType = "toggle_play"
)

// Action carries one user action and its argument.
type Action struct {
	Type   ActionType
	Index  int
	Text   string
	ItemID int
}

// Role tags the sender of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
