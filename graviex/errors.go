package graviex

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lemconn/gravlink/exchange"
)

// errorEnvelope 交易所内嵌错误格式
type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// HandleErrors 检查响应并分类失败
// 无副作用：成功时原样返回响应体，失败时返回对应的类型化错误。
//
// 分类规则：
//   - HTTP 503 视为交易所过载，与普通错误区分，调用方应退避重试
//   - 内嵌错误码 2002 为余额不足，2005/2007 为认证失败，1001 为交易所通用错误
//   - 其他内嵌错误码不单独分类，但其消息文本会进入通用错误
//   - 其余非 200 状态归为交易所通用错误
func HandleErrors(statusCode int, body []byte) ([]byte, error) {
	if statusCode == http.StatusServiceUnavailable {
		return nil, fmt.Errorf("%w: exchange overloaded", exchange.ErrExchangeUnavailable)
	}

	msg := "unknown error"
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		if envelope.Error.Message != "" {
			msg = envelope.Error.Message
		}
		switch envelope.Error.Code {
		case 2002:
			return nil, fmt.Errorf("%w: %s", exchange.ErrInsufficientFunds, msg)
		case 2005, 2007:
			return nil, fmt.Errorf("%w: %s", exchange.ErrAuthentication, msg)
		case 1001:
			return nil, fmt.Errorf("%w: %s", exchange.ErrExchange, msg)
		}
	}

	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: invalid response from exchange (http %d): %s",
			exchange.ErrExchange, statusCode, msg)
	}
	return body, nil
}
