package model

import "time"

// KaineetamLog is a self-reported payment confirmation against a blessing.
// Entries are append-only: never updated, never deleted. The auto-increment
// primary key preserves arrival order for the dashboard.
//
// BlessingCode is a weak reference; it is not enforced at write time, so a
// confirmation can outlive (or precede) the record it points at.
type KaineetamLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BlessingCode string    `json:"blessing_code" gorm:"size:8;not null;index"`
	GiverName    string    `json:"giver_name" gorm:"size:255;not null"`
	Amount       string    `json:"amount" gorm:"size:32;not null"` // stored as text; aggregation coerces unparseable values to zero
	Note         string    `json:"note,omitempty" gorm:"size:150"`
	CreatedAt    time.Time `json:"created_at"`
}
