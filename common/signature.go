package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SignHMAC256 HMAC-SHA256签名（小写hex编码）
func SignHMAC256(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// BuildQueryString 构建查询字符串
// 键按字典序排序；同一个键的切片值按原顺序展开为重复键。
// 签名覆盖该顺序，编码结果必须稳定可复现。
func BuildQueryString(params map[string]interface{}) string {
	if len(params) == 0 {
		return ""
	}

	// 排序键
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 构建查询字符串
	var parts []string
	for _, k := range keys {
		switch val := params[k].(type) {
		case []string:
			for _, v := range val {
				parts = append(parts, encodePair(k, v))
			}
		case []interface{}:
			for _, v := range val {
				parts = append(parts, encodePair(k, formatValue(v)))
			}
		default:
			parts = append(parts, encodePair(k, formatValue(val)))
		}
	}
	return strings.Join(parts, "&")
}

func encodePair(key, value string) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(value)
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// GetTimestamp 获取时间戳（毫秒）
func GetTimestamp() int64 {
	return time.Now().UnixMilli()
}
