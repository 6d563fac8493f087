package types

import (
	"strconv"
	"strings"
	"time"
)

// ExTimestamp 支持多种格式的时间戳类型
// 用于 JSON 反序列化时处理不同格式的时间戳（秒、毫秒、RFC3339 字符串）。
// 零值表示未知时间。
type ExTimestamp struct {
	time.Time
}

// Timestamp 从 time.Time 构造 ExTimestamp
func Timestamp(t time.Time) ExTimestamp {
	return ExTimestamp{Time: t}
}

// UnmarshalJSON 自定义 JSON 反序列化，支持多种时间戳格式
func (t *ExTimestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || strings.EqualFold(s, "null") {
		// 明确设置为零值
		t.Time = time.Time{}
		return nil
	}

	// 整数时间戳：10位按秒、13位按毫秒处理
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		switch {
		case len(s) <= 10:
			t.Time = time.Unix(ts, 0)
		case len(s) == 13:
			t.Time = time.UnixMilli(ts)
		default:
			t.Time = time.Time{}
		}
		return nil
	}

	// 小数时间戳：按秒处理，保留小数部分
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		sec := int64(f)
		nsec := int64((f - float64(sec)) * float64(time.Second))
		t.Time = time.Unix(sec, nsec)
		return nil
	}

	// fallback: RFC3339 string
	if tt, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = tt
		return nil
	}

	// 无法解析的时间戳按未知处理，不中断整条记录的解析
	t.Time = time.Time{}
	return nil
}

// MarshalJSON 序列化为毫秒时间戳，未知时间序列化为 null
func (t ExTimestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}
