package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSON array column. It backs the
// ordered image URL lists, property features, and blog tags.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Schools holds a neighborhood's school listings by level. The original
// data stored this as a free-form JSON blob; the known keys are typed here.
type Schools struct {
	Elementary []string `json:"elementary,omitempty"`
	Middle     []string `json:"middle,omitempty"`
	High       []string `json:"high,omitempty"`
}

// Value implements driver.Valuer.
func (s Schools) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Schools) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Amenities holds a neighborhood's amenity listings by category.
type Amenities struct {
	Beaches    []string `json:"beaches,omitempty"`
	Golf       []string `json:"golf,omitempty"`
	Shopping   []string `json:"shopping,omitempty"`
	Dining     []string `json:"dining,omitempty"`
	Arts       []string `json:"arts,omitempty"`
	Recreation []string `json:"recreation,omitempty"`
}

// Value implements driver.Valuer.
func (a Amenities) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (a *Amenities) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// Socials holds a team member's contact and social links. All fields are
// optional; absent links are omitted from API responses.
type Socials struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Value implements driver.Valuer.
func (s Socials) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *Socials) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// scanJSON unmarshals a JSON column value that may arrive as []byte, string,
// or NULL depending on the driver.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", value)
	}
}
