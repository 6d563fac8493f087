package types

// Currency 币种信息
type Currency struct {
	// ID 币种ID（交易所原始格式），如 "btc"
	ID string `json:"id"`

	// Code 币种代码（统一格式），如 "BTC"
	Code string `json:"code"`

	// Name 币种名称
	Name string `json:"name"`

	// Active 是否可用（state 为 offline、已下架或提现通道停用时为 false）
	Active bool `json:"active"`

	// Fee 提现手续费
	Fee ExFloat `json:"fee"`

	// Funding 充提状态
	Funding struct {
		// Withdraw 提现
		Withdraw struct {
			Active bool    `json:"active"` // 提现通道是否开启
			Fee    ExFloat `json:"fee"`    // 提现手续费
		} `json:"withdraw"`
		// Deposit 充值
		Deposit struct {
			Active bool    `json:"active"` // 充值通道是否开启
			Fee    ExFloat `json:"fee"`    // 充值手续费
		} `json:"deposit"`
	} `json:"funding"`

	// Limits 限制信息
	Limits struct {
		// Withdraw 提现限额
		Withdraw struct {
			Min ExFloat `json:"min"` // 最小提现数量
			Max ExFloat `json:"max"` // 最大提现数量
		} `json:"withdraw"`
	} `json:"limits"`

	// Info 交易所原始信息
	Info map[string]interface{} `json:"info,omitempty"`
}
