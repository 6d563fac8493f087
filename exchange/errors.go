package exchange

import "errors"

var (
	// ErrMarketNotFound 市场未找到
	ErrMarketNotFound = errors.New("market not found")
	// ErrOrderNotFound 订单未找到
	ErrOrderNotFound = errors.New("order not found")
	// ErrInsufficientFunds 余额不足（交易所错误码 2002）
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAuthentication 认证失败（交易所错误码 2005/2007）
	ErrAuthentication = errors.New("authentication failed")
	// ErrExchangeUnavailable 交易所过载（HTTP 503），调用方应退避重试
	ErrExchangeUnavailable = errors.New("exchange unavailable")
	// ErrExchange 交易所通用错误
	ErrExchange = errors.New("exchange error")
	// ErrInvalidSymbol 无效的交易对
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidTimeframe 无效的时间周期
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	// ErrArgumentsRequired 缺少必需参数
	ErrArgumentsRequired = errors.New("arguments required")
)
