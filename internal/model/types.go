package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings persisted as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal StringList: %w", err)
	}
	return b, nil
}
func (l *StringList) Scan(src any) error {
	data, err := jsonBytes("StringList", src)
	if err != nil || data == nil {
		*l = nil
		return err
	}
	if err := json.Unmarshal(data, (*[]string)(l)); err != nil {
		return fmt.Errorf("unmarshal StringList: %w", err)
	}
	return nil
}

// Video is one entry of an entity's video list.
type Video struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
}

// Videos is a list of videos persisted as a JSON array column.
type Videos []Video

func (v Videos) Value() (driver.Value, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal([]Video(v))
	if err != nil {
		return nil, fmt.Errorf("marshal Videos: %w", err)
	}
	return b, nil
}
func (v *Videos) Scan(src any) error {
	data, err := jsonBytes("Videos", src)
	if err != nil || data == nil {
		*v = nil
		return err
	}
	if err := json.Unmarshal(data, (*[]Video)(v)); err != nil {
		return fmt.Errorf("unmarshal Videos: %w", err)
	}
	return nil
}

// URLs returns the non-empty video URLs in order.
func (v Videos) URLs() []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		if e.URL != "" {
			out = append(out, e.URL)
		}
	}
	return out
}

func jsonBytes(typ string, src any) ([]byte, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return s, nil
	case string:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("%s.Scan: expected []byte, got %T", typ, src)
	}
}
