package graviex

// timeframes 统一时间周期到交易所周期代码（分钟数）的映射
var timeframes = map[string]string{
	"1m":  "1",
	"5m":  "5",
	"15m": "15",
	"30m": "30",
	"1h":  "60",
	"2h":  "120",
	"4h":  "240",
	"6h":  "360",
	"12h": "720",
	"1d":  "1440",
	"3d":  "4320",
	"1w":  "10080",
}

// GraviexTimeframe 转换为交易所时间周期代码
func GraviexTimeframe(timeframe string) (string, bool) {
	period, ok := timeframes[timeframe]
	return period, ok
}
