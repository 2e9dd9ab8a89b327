package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList 以 JSON 数组的形式将字符串列表存入 TEXT 列
// 用于 highlights、technologies、coursework 等无结构的有序字符串集合

type StringList []string

// Value 实现 driver.Valuer，序列化为 JSON 数组文本。
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner，从 TEXT/BLOB 列反序列化。
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported column type for StringList")
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}
