package growth

import "errors"

// ChatDTO is the inbound body for POST /growth-chat. user_id and message are
// required; without a conversation_id a new thread is started.
type ChatDTO struct {
	UserID            string `json:"user_id"`
	ConversationID    string `json:"conversation_id"`
	Message           string `json:"message"`
	ConversationTitle string `json:"conversation_title"`
}

// ChatReply is the assembled outcome of one chat turn.
type ChatReply struct {
	ConversationID string    `json:"conversation_id"`
	Response       string    `json:"response"`
	ResponseHTML   string    `json:"response_html"`
	Insights       []Insight `json:"insights"`
}

// Insight is one advisory annotation surfaced alongside a reply.
type Insight struct {
	Type     string `json:"type"`     // strategy | tactic | metric
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"` // high | medium | low
}

const defaultConversationTitle = "Growth Strategy Chat"

// historyWindow caps how many prior messages are woven into the prompt.
const historyWindow = 20

var (
	errCreateConversation = errors.New("failed to create conversation")
	errSaveMessage        = errors.New("failed to save message")
)
