package types

// Balance 余额信息
type Balance struct {
	Currency string  `json:"currency"` // 币种
	Free     ExFloat `json:"free"`     // 可用余额
	Used     ExFloat `json:"used"`     // 冻结余额
	Total    ExFloat `json:"total"`    // 总余额
}

// Balances 所有余额，Info 保留交易所原始响应
type Balances struct {
	Accounts map[string]*Balance    `json:"accounts"`       // 按币种索引的余额
	Info     map[string]interface{} `json:"info,omitempty"` // 交易所原始信息
}

// GetBalance 获取指定币种余额
func (b Balances) GetBalance(currency string) *Balance {
	if balance, ok := b.Accounts[currency]; ok {
		return balance
	}
	return &Balance{Currency: currency}
}
