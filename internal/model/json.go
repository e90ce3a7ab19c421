package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Nested collections are persisted as MySQL json columns. Each column
// type implements sql.Scanner and driver.Valuer through these helpers.

func jsonScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		if len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)
	case string:
		if data == "" {
			return nil
		}
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("model: unsupported json column src type %T", src)
	}
}

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}
