package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// Flag is a boolean column that tolerates every representation the store may
// hand back: native booleans, the integers 1/0 and the strings "1"/"0".
// Anything other than an exact "true" value reads as false.
type Flag bool

func (f *Flag) Scan(value any) error {
	*f = Flag(ToBool(value))
	return nil
}

func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// ToBool is an equality-based coercion, not a truthiness check: 2 or "yes"
// are false.
func ToBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v == 1
	case int:
		return v == 1
	case int32:
		return v == 1
	case string:
		return v == "1" || v == "true"
	case []byte:
		return string(v) == "1" || string(v) == "true"
	case Flag:
		return bool(v)
	default:
		return false
	}
}

// StringList parses a serialized string array column. Malformed JSON, a
// non-array document or a NULL column all degrade to an empty list, and empty
// entries are dropped.
func StringList(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		switch v := item.(type) {
		case nil:
		case string:
			if v != "" {
				out = append(out, v)
			}
		case bool:
			if v {
				out = append(out, "true")
			}
		default:
			if s := fmt.Sprint(v); s != "" && s != "0" {
				out = append(out, s)
			}
		}
	}
	return out
}

// NewStringList serializes items for storage; a nil slice is stored as "[]".
func NewStringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

// CompactStrings drops empty entries while keeping order.
func CompactStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
