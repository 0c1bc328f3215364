package models

import (
	"time"
)

// OutboundMessage is the send log: one row per template message handed to
// the Graph API, with the exact payload that was sent.
type OutboundMessage struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"` // UUID
	WaID         string    `gorm:"index;not null" json:"wa_id"`           // recipient phone number
	TemplateName string    `gorm:"type:varchar(255)" json:"template_name"`
	Language     string    `gorm:"type:varchar(50)" json:"language"`
	Payload      string    `gorm:"type:text" json:"payload"` // serialized template JSON
	Status       string    `gorm:"type:varchar(20)" json:"status"`
	ProviderID   string    `gorm:"type:varchar(255)" json:"provider_id"` // message id returned by the API
	Error        string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OutboundMessage) TableName() string {
	return "outbound_messages"
}

// Template is a locally synced row of the remote template catalog.
type Template struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Language   string `gorm:"type:varchar(50)" json:"language"`
	Category   string `gorm:"type:varchar(100)" json:"category"`
	Status     string `gorm:"type:varchar(50)" json:"status"`
	Components string `gorm:"type:text" json:"components"` // JSON components
}

func (Template) TableName() string {
	return "templates"
}
