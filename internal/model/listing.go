package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Listing represents a property listing
type Listing struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Type        string    `json:"type" db:"type"`
	Price       FlexPrice `json:"price" db:"price"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	OwnerID     *int64    `json:"owner_id,omitempty" db:"owner_id"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FlexPrice represents a stored price that may be numeric or a legacy
// formatted string ("45,00,000", "₹45 Lakh"). It always scans to the display
// text as stored; see service.NormalizePrice for the comparable numeric value.
type FlexPrice string

// Value implements driver.Valuer interface
func (p FlexPrice) Value() (driver.Value, error) {
	return string(p), nil
}

// Scan implements sql.Scanner interface
func (p *FlexPrice) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = ""
	case []byte:
		*p = FlexPrice(v)
	case string:
		*p = FlexPrice(v)
	case int64:
		*p = FlexPrice(strconv.FormatInt(v, 10))
	case float64:
		*p = FlexPrice(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("unsupported price type %T", value)
	}
	return nil
}

// UnmarshalJSON accepts both JSON numbers and strings
func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = FlexPrice(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price must be a number or string: %w", err)
	}
	*p = FlexPrice(n.String())
	return nil
}

// String returns the price exactly as stored
func (p FlexPrice) String() string {
	return string(p)
}

// LedgerEntry is one grounding line derived from a Listing. Entries are built
// fresh per assistant request and discarded after prompt assembly.
type LedgerEntry struct {
	Title           string
	Type            string
	DisplayPrice    string
	Location        string
	NormalizedPrice int64
	Description     string
}
