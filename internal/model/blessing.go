package model

import (
	"time"

	"github.com/google/uuid"
)

// Tone selects the style of the generated blessing message.
type Tone string

const (
	ToneModern      Tone = "modern"
	ToneTraditional Tone = "traditional"
	ToneFunny       Tone = "funny"
	TonePoetic      Tone = "poetic"
	ToneSimple      Tone = "simple"
)

// Valid reports whether the tone is one of the supported set.
func (t Tone) Valid() bool {
	switch t {
	case ToneModern, ToneTraditional, ToneFunny, TonePoetic, ToneSimple:
		return true
	}
	return false
}

// Blessing represents a Vishu greeting created by a sender for a recipient.
// Records are immutable once created: the message text is resolved from the
// tone at creation time and stored, so every view shows the same wording.
type Blessing struct {
	Code          string     `json:"code" gorm:"primaryKey;size:8"`
	RecipientName string     `json:"recipient_name" gorm:"size:255;not null"`
	SenderName    string     `json:"sender_name" gorm:"size:255;not null"`
	UPIID         string     `json:"upi_id" gorm:"column:upi_id;size:255;not null"` // opaque payee handle, never validated against a payment network
	Tone          Tone       `json:"tone" gorm:"type:varchar(20);not null"`
	CustomMessage string     `json:"custom_message,omitempty" gorm:"size:200"`
	Message       string     `json:"message" gorm:"size:500;not null"`
	SenderID      *uuid.UUID `json:"sender_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt     time.Time  `json:"created_at"`
}
