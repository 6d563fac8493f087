package common

import "strings"

// commonCurrencyAliases 部分币种的交易所代码与通用代码不一致
var commonCurrencyAliases = map[string]string{
	"XBT": "BTC",
	"BCC": "BCH",
	"DRK": "DASH",
}

// CommonCurrencyCode 将交易所原始币种代码转换为统一格式
func CommonCurrencyCode(currencyID string) string {
	code := strings.ToUpper(currencyID)
	if alias, ok := commonCurrencyAliases[code]; ok {
		return alias
	}
	return code
}

// NormalizeSymbol 标准化交易对格式为 BASE/QUOTE (如 BTC/USD)
func NormalizeSymbol(base, quote string) string {
	return strings.ToUpper(base) + "/" + strings.ToUpper(quote)
}

// ParseSymbol 解析标准化交易对 (BTC/USD -> base, quote)
func ParseSymbol(symbol string) (base, quote string, ok bool) {
	parts := strings.Split(symbol, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.ToUpper(parts[0]), strings.ToUpper(parts[1]), true
}
