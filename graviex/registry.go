package graviex

import (
	"sync"

	"github.com/lemconn/gravlink/types"
)

// Registry 市场与币种注册表
// 解析器通过注册表把交易所原始ID还原为统一符号。刷新时整表替换，
// 查询容忍未命中：目录过期不会导致单条记录解析失败。
type Registry struct {
	mu              sync.RWMutex
	marketsByID     map[string]*types.Market
	marketsBySymbol map[string]*types.Market
	currenciesByID  map[string]*types.Currency
}

// NewRegistry 创建注册表
func NewRegistry() *Registry {
	return &Registry{
		marketsByID:     make(map[string]*types.Market),
		marketsBySymbol: make(map[string]*types.Market),
		currenciesByID:  make(map[string]*types.Currency),
	}
}

// ReplaceMarkets 整表替换市场信息
func (r *Registry) ReplaceMarkets(markets []*types.Market) {
	byID := make(map[string]*types.Market, len(markets))
	bySymbol := make(map[string]*types.Market, len(markets))
	for _, market := range markets {
		byID[market.ID] = market
		bySymbol[market.Symbol] = market
	}

	r.mu.Lock()
	r.marketsByID = byID
	r.marketsBySymbol = bySymbol
	r.mu.Unlock()
}

// MarketByID 按交易所原始ID查询市场
func (r *Registry) MarketByID(id string) (*types.Market, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	market, ok := r.marketsByID[id]
	return market, ok
}

// MarketBySymbol 按统一符号查询市场
func (r *Registry) MarketBySymbol(symbol string) (*types.Market, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	market, ok := r.marketsBySymbol[symbol]
	return market, ok
}

// Markets 返回全部市场
func (r *Registry) Markets() []*types.Market {
	r.mu.RLock()
	defer r.mu.RUnlock()
	markets := make([]*types.Market, 0, len(r.marketsByID))
	for _, market := range r.marketsByID {
		markets = append(markets, market)
	}
	return markets
}

// Size 市场数量
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.marketsByID)
}

// SetCurrency 缓存币种信息
func (r *Registry) SetCurrency(currency *types.Currency) {
	r.mu.Lock()
	r.currenciesByID[currency.ID] = currency
	r.mu.Unlock()
}

// CurrencyByID 按交易所原始ID查询币种
func (r *Registry) CurrencyByID(id string) (*types.Currency, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	currency, ok := r.currenciesByID[id]
	return currency, ok
}
