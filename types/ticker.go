package types

import "time"

// Ticker 行情信息
type Ticker struct {
	Symbol      string                 `json:"symbol"`         // 交易对
	Timestamp   time.Time              `json:"timestamp"`      // 时间戳
	Bid         ExFloat                `json:"bid"`            // 买一价
	Ask         ExFloat                `json:"ask"`            // 卖一价
	Last        ExFloat                `json:"last"`           // 最新价
	Close       ExFloat                `json:"close"`          // 收盘价（同 last）
	Open        ExFloat                `json:"open"`           // 开盘价
	High        ExFloat                `json:"high"`           // 最高价
	Low         ExFloat                `json:"low"`            // 最低价
	Change      ExFloat                `json:"change"`         // 涨跌额（last - open）
	Percentage  ExFloat                `json:"percentage"`     // 涨跌幅（仅上涨时计算）
	Average     ExFloat                `json:"average"`        // 均价（(open + last) / 2）
	BaseVolume  ExFloat                `json:"base_volume"`    // 24小时成交量
	QuoteVolume ExFloat                `json:"quote_volume"`   // 24小时成交额
	Info        map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}
