package graviex

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lemconn/gravlink/common"
	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/types"
)

// parseMarket 解析 tickers 接口的单个市场条目
// 开放判定为失败关闭：仅当 api 严格为 true 且 wstatus 为 "on" 时市场才
// 视为可交易，字段缺失或取值异常一律视为不可交易。
func (g *Graviex) parseMarket(id string, raw json.RawMessage) *types.Market {
	var entry graviexTicker
	// 解析失败时按空条目降级处理，保留 info，不影响其他市场
	_ = json.Unmarshal(raw, &entry)

	api, _ := entry.API.(bool)
	active := api && entry.WStatus == "on"

	baseID := strings.ToUpper(entry.BaseUnit)
	quoteID := strings.ToUpper(entry.QuoteUnit)
	base := common.CommonCurrencyCode(baseID)
	quote := common.CommonCurrencyCode(quoteID)

	symbol := entry.Name
	if symbol == "" && base != "" && quote != "" {
		symbol = common.NormalizeSymbol(base, quote)
	}

	market := &types.Market{
		ID:      id,
		Symbol:  symbol,
		Base:    base,
		Quote:   quote,
		BaseID:  baseID,
		QuoteID: quoteID,
		Active:  active,
		Maker:   types.Float(g.config.makerFee),
		Taker:   types.Float(g.config.takerFee),
		Info:    rawInfo(raw),
	}
	market.Precision.Amount = g.config.amountPrecision
	market.Precision.Price = g.config.pricePrecision
	market.Precision.Cost = g.config.costPrecision
	if entry.BaseMin.Valid {
		market.Limits.Amount.Min = entry.BaseMin
	} else {
		market.Limits.Amount.Min = types.Float(g.config.minAmount)
	}
	return market
}

// FetchCurrency 获取币种信息
func (g *Graviex) FetchCurrency(ctx context.Context, code string) (*types.Currency, error) {
	params := map[string]interface{}{
		"currency": strings.ToLower(code),
	}
	resp, err := g.request(ctx, "currency/info", ScopePublic, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch currency: %w", err)
	}

	currency := g.parseCurrency(resp)
	// 缓存供资金流水解析时按原始ID还原统一代码
	g.registry.SetCurrency(currency)
	return currency, nil
}

// parseCurrency 解析 currency/info 接口返回
// 不可用判定按优先级依次检查：state 为 offline、已下架、提现通道停用，
// 任一命中即视为不可用。
func (g *Graviex) parseCurrency(raw []byte) *types.Currency {
	var entry graviexCurrency
	_ = json.Unmarshal(raw, &entry)

	inuse := truthy(entry.Withdraw.InUse)
	active := true
	if entry.State == "offline" {
		active = false
	} else if entry.Delisting == true {
		active = false
	} else if !inuse {
		active = false
	}

	fee := entry.Withdraw.Fee
	if !fee.Valid {
		// 接口未返回手续费时回退到静态费率表
		code := common.CommonCurrencyCode(entry.Code)
		if v, ok := g.config.withdrawFees[code]; ok {
			fee = types.Float(v)
		} else {
			fee = types.Float(g.config.defaultWithdrawFee)
		}
	}

	currency := &types.Currency{
		ID:     entry.Code,
		Code:   common.CommonCurrencyCode(entry.Code),
		Name:   entry.Key,
		Active: active,
		Fee:    fee,
		Info:   rawInfo(raw),
	}
	currency.Funding.Withdraw.Active = inuse
	currency.Funding.Withdraw.Fee = fee
	currency.Funding.Deposit.Active = active
	currency.Funding.Deposit.Fee = types.Float(0)
	currency.Limits.Withdraw.Max = entry.Withdraw.Max
	return currency
}

// parseTicker 解析单条行情
// 衍生字段：change = last - open；percentage 仅在 open > 0 且 change > 0
// 时计算（下跌不产生 percentage，与交易所原始口径保持一致）；
// average = (open + last) / 2。时间戳由秒转为毫秒精度。
func parseTicker(symbol string, raw json.RawMessage) *types.Ticker {
	var entry graviexTicker
	_ = json.Unmarshal(raw, &entry)

	ticker := &types.Ticker{
		Symbol:      symbol,
		Timestamp:   entry.At.Time,
		Bid:         entry.Buy,
		Ask:         entry.Sell,
		Last:        entry.Last,
		Close:       entry.Last,
		Open:        entry.Open,
		High:        entry.High,
		Low:         entry.Low,
		BaseVolume:  entry.Volume,
		QuoteVolume: entry.Volume2,
		Info:        rawInfo(raw),
	}

	if entry.Last.Valid && entry.Open.Valid {
		change := entry.Last.Float64 - entry.Open.Float64
		ticker.Change = types.Float(change)
		if entry.Open.Float64 > 0 && change > 0 {
			ticker.Percentage = types.Float(change / entry.Open.Float64 * 100)
		}
		ticker.Average = types.Float((entry.Open.Float64 + entry.Last.Float64) / 2)
	}
	return ticker
}

// FetchTicker 获取单个交易对行情
func (g *Graviex) FetchTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	tickers, err := g.FetchTickers(ctx, symbol)
	if err != nil {
		return nil, err
	}
	ticker, ok := tickers[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", exchange.ErrInvalidSymbol, symbol)
	}
	return ticker, nil
}

// FetchTickers 批量获取行情，symbols 为空时返回全部
func (g *Graviex) FetchTickers(ctx context.Context, symbols ...string) (map[string]*types.Ticker, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	resp, err := g.request(ctx, "tickers", ScopePublic, "GET", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(resp, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal tickers: %w", err)
	}

	result := make(map[string]*types.Ticker, len(entries))
	for id, raw := range entries {
		symbol := id
		if market, ok := g.registry.MarketByID(id); ok {
			symbol = market.Symbol
		}
		result[symbol] = parseTicker(symbol, raw)
	}

	if len(symbols) == 0 {
		return result, nil
	}
	filtered := make(map[string]*types.Ticker, len(symbols))
	for _, symbol := range symbols {
		if ticker, ok := result[symbol]; ok {
			filtered[symbol] = ticker
		}
	}
	return filtered, nil
}

// parseOrderBook 解析 depth 接口返回
// 买单按价格从高到低、卖单按价格从低到高排序后输出。
func parseOrderBook(symbol string, raw []byte) *types.OrderBook {
	var entry graviexDepth
	_ = json.Unmarshal(raw, &entry)

	book := &types.OrderBook{
		Symbol:    symbol,
		Timestamp: entry.Timestamp.Time,
		Bids:      parseBookSide(entry.Bids),
		Asks:      parseBookSide(entry.Asks),
		Info:      rawInfo(raw),
	}
	sort.SliceStable(book.Bids, func(i, j int) bool {
		return book.Bids[i].Price.Float64 > book.Bids[j].Price.Float64
	})
	sort.SliceStable(book.Asks, func(i, j int) bool {
		return book.Asks[i].Price.Float64 < book.Asks[j].Price.Float64
	})
	return book
}

func parseBookSide(levels [][]types.ExFloat) []types.OrderBookEntry {
	entries := make([]types.OrderBookEntry, 0, len(levels))
	for _, level := range levels {
		var entry types.OrderBookEntry
		if len(level) > 0 {
			entry.Price = level[0]
		}
		if len(level) > 1 {
			entry.Amount = level[1]
		}
		entries = append(entries, entry)
	}
	return entries
}

// FetchOrderBook 获取订单簿快照
func (g *Graviex) FetchOrderBook(ctx context.Context, symbol string, limit int) (*types.OrderBook, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := g.GetMarket(symbol)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20 // 交易所默认档位
	}

	params := map[string]interface{}{
		"market": market.ID,
		"limit":  limit,
	}
	resp, err := g.request(ctx, "depth", ScopePublic, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch order book: %w", err)
	}
	return parseOrderBook(symbol, resp), nil
}

// parseTrade 解析单条成交，公共成交与用户成交共用
// 交易对通过注册表按原始ID还原；未命中时回退到调用方给定的市场，
// 仍未命中则符号留空，目录过期不会让单条成交解析失败。
// 成交金额为 价格×数量 后按市场成本精度舍入。
func (g *Graviex) parseTrade(raw json.RawMessage, fallback *types.Market) *types.Trade {
	var entry graviexTrade
	_ = json.Unmarshal(raw, &entry)

	market := fallback
	if m, ok := g.registry.MarketByID(entry.Market); ok {
		market = m
	}

	trade := &types.Trade{
		ID:        entry.ID.String(),
		OrderID:   entry.OrderID.String(),
		Side:      entry.Side,
		Price:     entry.Price,
		Amount:    entry.Volume,
		Timestamp: entry.At.Time,
		Info:      rawInfo(raw),
	}
	if market != nil {
		trade.Symbol = market.Symbol
	}
	if entry.Price.Valid && entry.Volume.Valid {
		cost := entry.Price.Float64 * entry.Volume.Float64
		if market != nil {
			cost = common.MulToPrecision(entry.Price.Float64, entry.Volume.Float64, market.Precision.Cost)
		}
		trade.Cost = types.Float(cost)
	}
	return trade
}

// parseTrades 逐条解析成交列表
// 每条记录独立解析，单条异常不影响批次内其他记录。
func (g *Graviex) parseTrades(resp []byte, fallback *types.Market) ([]*types.Trade, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal trades: %w", err)
	}
	trades := make([]*types.Trade, 0, len(items))
	for _, item := range items {
		trades = append(trades, g.parseTrade(item, fallback))
	}
	return trades, nil
}

// FetchTrades 获取市场成交记录
func (g *Graviex) FetchTrades(ctx context.Context, symbol string, limit int) ([]*types.Trade, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := g.GetMarket(symbol)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20 // 交易所默认条数
	}

	params := map[string]interface{}{
		"market": market.ID,
		"limit":  limit,
	}
	resp, err := g.request(ctx, "trades", ScopePublic, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch trades: %w", err)
	}
	return g.parseTrades(resp, market)
}

// parseOHLCV 解析单条K线 [时间戳(秒), 开, 高, 低, 收, 量]
func parseOHLCV(entry []types.ExFloat) *types.OHLCV {
	ohlcv := &types.OHLCV{}
	if len(entry) > 0 && entry[0].Valid {
		ohlcv.Timestamp = time.Unix(int64(entry[0].Float64), 0)
	}
	if len(entry) > 1 {
		ohlcv.Open = entry[1]
	}
	if len(entry) > 2 {
		ohlcv.High = entry[2]
	}
	if len(entry) > 3 {
		ohlcv.Low = entry[3]
	}
	if len(entry) > 4 {
		ohlcv.Close = entry[4]
	}
	if len(entry) > 5 {
		ohlcv.Volume = entry[5]
	}
	return ohlcv
}

// FetchOHLCV 获取K线数据
func (g *Graviex) FetchOHLCV(ctx context.Context, symbol string, timeframe string, since time.Time, limit int) (types.OHLCVs, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := g.GetMarket(symbol)
	if err != nil {
		return nil, err
	}
	period, ok := GraviexTimeframe(timeframe)
	if !ok {
		return nil, fmt.Errorf("%w: %s", exchange.ErrInvalidTimeframe, timeframe)
	}
	if limit <= 0 {
		// 交易所默认仅返回30条，对多数消费端偏少，默认取100
		limit = 100
	}

	params := map[string]interface{}{
		"market": market.ID,
		"period": period,
		"limit":  limit,
	}
	if !since.IsZero() {
		params["timestamp"] = since.Unix()
	}
	resp, err := g.request(ctx, "k", ScopePublic, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch ohlcv: %w", err)
	}

	var entries [][]types.ExFloat
	if err := json.Unmarshal(resp, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal ohlcv: %w", err)
	}
	ohlcvs := make(types.OHLCVs, 0, len(entries))
	for _, entry := range entries {
		ohlcvs = append(ohlcvs, parseOHLCV(entry))
	}
	return ohlcvs, nil
}
