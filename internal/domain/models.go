// Package domain defines the persistence models for orders and their
// immutable content snapshots. These types are mapped with GORM and form
// the core data layer of the document-generation backend.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Order status values. An order is created as pending, becomes paid via the
// mock-payment endpoint, and may be recorded as failed by operators. Paid is
// terminal; there is no transition back to pending.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Recipient identifies the company or authority a generated document is
// addressed to, as resolved from the static recipient directory at the time
// the order was created.
type Recipient struct {
	LegalName string `json:"legal_name"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
}

// ContentSnapshot is the immutable bundle captured when an order is created.
// It records everything needed to re-render the order detail page without
// re-running validation or generation: the request context, the compiled
// fact sheet, the raw form, and both generated texts.
//
// Payment never mutates the snapshot; it only flips the order status.
type ContentSnapshot struct {
	Locale                string            `json:"locale"`
	Category              string            `json:"category"`
	Company               string            `json:"company"`
	Recipient             *Recipient        `json:"recipient,omitempty"`
	Facts                 string            `json:"facts"`
	Form                  map[string]string `json:"form,omitempty"`
	SpanishLegalText      string            `json:"spanish_legal_text"`
	NativeUserTranslation string            `json:"native_user_translation"`
}

// Value implements driver.Valuer so GORM stores the snapshot as a JSON blob.
func (s ContentSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for reading the JSON blob back.
func (s *ContentSnapshot) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = ContentSnapshot{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("content snapshot: unsupported column type")
	}
}

// Order is the persisted record of one successful generation request.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Status: pending|paid|failed (enforced by DB constraint).
//   - AmountCents: fixed document price captured at creation.
//   - Snapshot: immutable JSON content snapshot, fully populated at creation;
//     there is no partially-generated order state.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Order struct {
	ID          string          `json:"id"           gorm:"type:char(36);primaryKey"`
	Status      string          `json:"status"       gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','paid','failed');index"`
	AmountCents int             `json:"amount_cents" gorm:"not null"`
	Snapshot    ContentSnapshot `json:"content_snapshot" gorm:"type:text;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-"            gorm:"index"`
}

// TableName returns the database table name for Order.
func (Order) TableName() string { return "orders" }

// Paid reports whether the order has been paid. The primary legal text is
// only shown in full once this is true; the translation is always visible.
func (o *Order) Paid() bool { return o.Status == OrderStatusPaid }
