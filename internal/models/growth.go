package models

import "time"

// GrowthConversationModel is an append-only chat thread with the growth persona.
type GrowthConversationModel struct {
	Base
	UserID            string     `json:"user_id"            gorm:"index;not null"`
	ConversationTitle string     `json:"conversation_title"`
	MessageCount      int        `json:"message_count"`
	LastMessageAt     *time.Time `json:"last_message_at"`
}

func (GrowthConversationModel) TableName() string { return "growth_conversations" }

// GrowthMessageModel is one message in a conversation. Immutable once created;
// ordering is by creation time ascending.
type GrowthMessageModel struct {
	Base
	ConversationID string `json:"conversation_id" gorm:"index;not null"`
	UserID         string `json:"user_id"         gorm:"index;not null"`
	Role           string `json:"role"            gorm:"not null"` // user | assistant
	Content        string `json:"content"         gorm:"type:longtext;not null"`
}

func (GrowthMessageModel) TableName() string { return "growth_messages" }

// GrowthInsightModel is an advisory annotation derived from an assistant reply
// by keyword matching. Not authoritative; best-effort only.
type GrowthInsightModel struct {
	Base
	UserID         string `json:"user_id"         gorm:"index;not null"`
	ConversationID string `json:"conversation_id" gorm:"index;not null"`
	InsightType    string `json:"insight_type"` // strategy | tactic | metric
	Title          string `json:"title"`
	Content        string `json:"content"         gorm:"type:text"`
	Priority       string `json:"priority"` // high | medium | low
}

func (GrowthInsightModel) TableName() string { return "growth_insights" }
