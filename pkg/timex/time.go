// Package timex provides time types with a fixed JSON layout and database support
// Package timex 提供固定 JSON 格式并支持数据库读写的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// DateTimeLayout layout used for JSON encoding of Time
	// DateTimeLayout Time 的 JSON 编码格式
	DateTimeLayout = "2006-01-02 15:04:05"
	// DateLayout layout used for JSON encoding of Date
	// DateLayout Date 的 JSON 编码格式
	DateLayout = "2006-01-02"
)

// Time wraps time.Time, encodes as "yyyy-MM-dd HH:mm:ss"
// Time 封装 time.Time，编码为 "yyyy-MM-dd HH:mm:ss"
type Time time.Time

// Now returns the current local time
// Now 返回当前本地时间
func Now() Time {
	return Time(time.Now())
}

// Std converts back to time.Time
func (t Time) Std() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Before(u Time) bool {
	return time.Time(t).Before(time.Time(u))
}

func (t Time) After(u Time) bool {
	return time.Time(t).After(time.Time(u))
}

func (t Time) Equal(u Time) bool {
	return time.Time(t).Equal(time.Time(u))
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) String() string {
	return time.Time(t).Format(DateTimeLayout)
}

// MarshalJSON implements json.Marshaler
// MarshalJSON 实现 json.Marshaler 接口
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + time.Time(t).Format(DateTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts "yyyy-MM-dd HH:mm:ss", RFC3339 or null
// UnmarshalJSON 接受 "yyyy-MM-dd HH:mm:ss"、RFC3339 或 null
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time{}
		return nil
	}
	parsed, err := parse(s, DateTimeLayout)
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer
// Value 实现 driver.Valuer 接口
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan implements sql.Scanner
// Scan 实现 sql.Scanner 接口
func (t *Time) Scan(value interface{}) error {
	v, err := scan(value)
	if err != nil {
		return err
	}
	*t = Time(v)
	return nil
}

// Date is a calendar day, encodes as "yyyy-MM-dd"
// Date 表示日期，编码为 "yyyy-MM-dd"
type Date time.Time

func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) Before(u Date) bool {
	return time.Time(d).Before(time.Time(u))
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + time.Time(d).Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := parse(s, DateLayout)
	if err != nil {
		return err
	}
	y, m, day := parsed.Date()
	*d = Date(time.Date(y, m, day, 0, 0, 0, 0, time.Local))
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Time(d), nil
}

func (d *Date) Scan(value interface{}) error {
	v, err := scan(value)
	if err != nil {
		return err
	}
	*d = Date(v)
	return nil
}

func parse(s, layout string) (time.Time, error) {
	for _, l := range []string{layout, DateTimeLayout, time.RFC3339Nano, DateLayout} {
		if v, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return v, nil
		}
	}
	return time.Time{}, fmt.Errorf("timex: cannot parse %q", s)
}

// scan 兼容不同驱动返回的时间格式
func scan(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		return parseStored(v)
	case []byte:
		return parseStored(string(v))
	default:
		return time.Time{}, fmt.Errorf("timex: unsupported scan type %T", value)
	}
}

func parseStored(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999",
		DateTimeLayout,
		DateLayout,
	}
	for _, l := range layouts {
		if v, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return v, nil
		}
	}
	return time.Time{}, fmt.Errorf("timex: cannot parse stored time %q", s)
}
