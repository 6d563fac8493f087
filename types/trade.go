package types

import "time"

// Trade 成交记录
type Trade struct {
	ID        string                 `json:"id"`             // 成交ID
	OrderID   string                 `json:"order_id"`       // 订单ID
	Symbol    string                 `json:"symbol"`         // 交易对
	Side      string                 `json:"side"`           // 方向
	Price     ExFloat                `json:"price"`          // 价格
	Amount    ExFloat                `json:"amount"`         // 数量
	Cost      ExFloat                `json:"cost"`           // 成交金额（按市场成本精度舍入）
	Fee       *Fee                   `json:"fee,omitempty"`  // 手续费
	Timestamp time.Time              `json:"timestamp"`      // 时间戳
	Info      map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}

// Fee 手续费
type Fee struct {
	Currency string  `json:"currency"` // 手续费币种
	Cost     ExFloat `json:"cost"`     // 手续费金额
	Rate     ExFloat `json:"rate"`     // 手续费率
}
