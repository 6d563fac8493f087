package types

import "time"

// OHLCV K线数据
type OHLCV struct {
	Timestamp time.Time `json:"timestamp"` // K线开始时间
	Open      ExFloat   `json:"open"`      // 开盘价
	High      ExFloat   `json:"high"`      // 最高价
	Low       ExFloat   `json:"low"`       // 最低价
	Close     ExFloat   `json:"close"`     // 收盘价
	Volume    ExFloat   `json:"volume"`    // 成交量
}

// OHLCVs K线数据数组
type OHLCVs []*OHLCV
