package types

// Market 市场信息
type Market struct {
	// ID 市场ID（交易所原始格式），如 "btcusd"
	ID string `json:"id"`

	// Symbol 交易对符号（统一格式），如 "BTC/USD"
	Symbol string `json:"symbol"`

	// Base 基础货币（统一格式），如 "BTC"
	Base string `json:"base"`

	// Quote 计价货币（统一格式），如 "USD"
	Quote string `json:"quote"`

	// BaseID 基础货币（交易所原始格式）
	BaseID string `json:"base_id"`

	// QuoteID 计价货币（交易所原始格式）
	QuoteID string `json:"quote_id"`

	// Active 是否可交易（api 开启且 wstatus 为 on 时为 true）
	Active bool `json:"active"`

	// Maker / Taker 手续费率
	Maker ExFloat `json:"maker"`
	Taker ExFloat `json:"taker"`

	// Precision 精度信息
	Precision struct {
		// Amount 数量精度
		Amount int `json:"amount"`
		// Price 价格精度
		Price int `json:"price"`
		// Cost 成本精度
		Cost int `json:"cost"`
	} `json:"precision"`

	// Limits 限制信息
	Limits struct {
		// Amount 数量限制
		Amount struct {
			// Min 最小数量
			Min ExFloat `json:"min"`
			// Max 最大数量
			Max ExFloat `json:"max"`
		} `json:"amount"`
	} `json:"limits"`

	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}
