package types

import "time"

// OrderBookEntry 订单簿条目
type OrderBookEntry struct {
	// Price 价格
	Price ExFloat `json:"price"`
	// Amount 数量
	Amount ExFloat `json:"amount"`
}

// OrderBook 订单簿快照
type OrderBook struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Bids 买单列表（价格从高到低）
	Bids []OrderBookEntry `json:"bids"`
	// Asks 卖单列表（价格从低到高）
	Asks []OrderBookEntry `json:"asks"`
	// Timestamp 快照时间戳
	Timestamp time.Time `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}
