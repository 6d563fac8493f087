package graviex

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lemconn/gravlink/common"
	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/types"
)

// parseOrder 解析单笔订单
// 交易对与手续费币种通过注册表按原始ID还原，未命中时符号留空。
func (g *Graviex) parseOrder(raw json.RawMessage) *types.Order {
	var entry graviexOrder
	_ = json.Unmarshal(raw, &entry)

	order := &types.Order{
		ID:        entry.ID.String(),
		Type:      entry.OrdType,
		Side:      entry.Side,
		Status:    ParseOrderStatus(entry.State),
		Price:     entry.Price,
		Average:   entry.AvgPrice,
		Amount:    entry.Volume,
		Filled:    entry.ExecutedVolume,
		Remaining: entry.RemainingVolume,
		Trades:    entry.TradesCount,
		Timestamp: entry.At.Time,
		Info:      rawInfo(raw),
	}
	if market, ok := g.registry.MarketByID(entry.Market); ok {
		order.Symbol = market.Symbol
		order.Fee = &types.Fee{Currency: market.Quote}
	}
	return order
}

// parseOrders 逐条解析订单列表，单条异常不影响批次内其他记录
func (g *Graviex) parseOrders(resp []byte) ([]*types.Order, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(resp, &items); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	orders := make([]*types.Order, 0, len(items))
	for _, item := range items {
		orders = append(orders, g.parseOrder(item))
	}
	return orders, nil
}

// FetchBalance 获取账户余额
func (g *Graviex) FetchBalance(ctx context.Context) (types.Balances, error) {
	resp, err := g.request(ctx, "members/me", ScopePrivate, "GET", nil)
	if err != nil {
		return types.Balances{}, fmt.Errorf("fetch balance: %w", err)
	}

	var member graviexMember
	if err := json.Unmarshal(resp, &member); err != nil {
		return types.Balances{}, fmt.Errorf("unmarshal balance: %w", err)
	}

	balances := types.Balances{
		Accounts: make(map[string]*types.Balance, len(member.AccountsFiltered)),
		Info:     rawInfo(resp),
	}
	for _, item := range member.AccountsFiltered {
		var account graviexAccount
		_ = json.Unmarshal(item, &account)

		code := common.CommonCurrencyCode(account.Currency)
		if currency, ok := g.registry.CurrencyByID(account.Currency); ok {
			code = currency.Code
		}

		balance := &types.Balance{
			Currency: code,
			Free:     account.Balance,
			Used:     account.Locked,
		}
		if account.Balance.Valid && account.Locked.Valid {
			balance.Total = types.Float(account.Balance.Float64 + account.Locked.Float64)
		}
		balances.Accounts[code] = balance
	}
	return balances, nil
}

// CreateOrder 创建订单
// 下单数量按市场数量精度格式化；创建成功后按ID记录到本地最近订单缓存。
func (g *Graviex) CreateOrder(ctx context.Context, symbol string, side types.OrderSide, orderType types.OrderType, amount, price string) (*types.Order, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := g.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"market": market.ID,
		"volume": common.FormatToPrecision(amount, market.Precision.Amount),
		"side":   side.Lower(),
	}
	if price != "" {
		params["price"] = common.FormatToPrecision(price, market.Precision.Price)
	}
	if orderType != "" {
		params["ord_type"] = orderType.Lower()
	}

	resp, err := g.request(ctx, "orders", ScopePrivate, "POST", params)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	order := g.parseOrder(resp)
	g.rememberOrder(order)
	return order, nil
}

// CreateOrders 批量创建订单
// 参数以 orders[i][field] 形式编码，保证排序后的键序与各笔订单的字段
// 配对关系稳定。
func (g *Graviex) CreateOrders(ctx context.Context, symbol string, orders []types.OrderRequest) ([]*types.Order, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: orders", exchange.ErrArgumentsRequired)
	}
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := g.GetMarket(symbol)
	if err != nil {
		return nil, err
	}

	params := map[string]interface{}{
		"market": market.ID,
	}
	for i, order := range orders {
		prefix := fmt.Sprintf("orders[%d]", i)
		params[prefix+"[side]"] = order.Side.Lower()
		params[prefix+"[volume]"] = common.FormatToPrecision(order.Amount, market.Precision.Amount)
		if order.Price != "" {
			params[prefix+"[price]"] = common.FormatToPrecision(order.Price, market.Precision.Price)
		}
		if order.Type != "" {
			params[prefix+"[ord_type]"] = order.Type.Lower()
		}
	}

	resp, err := g.request(ctx, "orders/multi", ScopePrivate, "POST", params)
	if err != nil {
		return nil, fmt.Errorf("create orders: %w", err)
	}

	created, err := g.parseOrders(resp)
	if err != nil {
		return nil, err
	}
	for _, order := range created {
		g.rememberOrder(order)
	}
	return created, nil
}

// CancelOrder 取消订单并返回取消后的订单状态
func (g *Graviex) CancelOrder(ctx context.Context, orderID, symbol string) (*types.Order, error) {
	params := map[string]interface{}{
		"id": orderID,
	}
	if _, err := g.request(ctx, "order/delete", ScopePrivate, "POST", params); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return g.FetchOrder(ctx, orderID, symbol)
}

// CancelAllOrders 取消全部订单
func (g *Graviex) CancelAllOrders(ctx context.Context, symbol string) error {
	params := map[string]interface{}{}
	if symbol != "" {
		market, err := g.GetMarket(symbol)
		if err != nil {
			return err
		}
		params["market"] = market.ID
	}
	if _, err := g.request(ctx, "orders/clear", ScopePrivate, "POST", params); err != nil {
		return fmt.Errorf("cancel all orders: %w", err)
	}
	return nil
}

// FetchOrder 查询单笔订单
func (g *Graviex) FetchOrder(ctx context.Context, orderID, symbol string) (*types.Order, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	params := map[string]interface{}{
		"id": orderID,
	}
	resp, err := g.request(ctx, "order", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}
	return g.parseOrder(resp), nil
}

// fetchOrdersByStatus 按统一状态查询订单列表
// 统一状态经状态映射编码回交易所格式后作为过滤条件。
func (g *Graviex) fetchOrdersByStatus(ctx context.Context, status types.OrderStatus, symbol string, limit int) ([]*types.Order, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	params := map[string]interface{}{
		"page":  1,
		"limit": limit,
		"state": EncodeOrderStatus(status),
	}
	if symbol != "" {
		market, err := g.GetMarket(symbol)
		if err != nil {
			return nil, err
		}
		params["market"] = market.ID
	}

	resp, err := g.request(ctx, "orders", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return g.parseOrders(resp)
}

// FetchOpenOrders 查询未成交订单
func (g *Graviex) FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]*types.Order, error) {
	return g.fetchOrdersByStatus(ctx, types.OrderStatusOpen, symbol, limit)
}

// FetchClosedOrders 查询已关闭订单
func (g *Graviex) FetchClosedOrders(ctx context.Context, symbol string, limit int) ([]*types.Order, error) {
	return g.fetchOrdersByStatus(ctx, types.OrderStatusClosed, symbol, limit)
}

// FetchMyTrades 获取我的成交记录
func (g *Graviex) FetchMyTrades(ctx context.Context, symbol string, since time.Time, limit int) ([]*types.Trade, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	params := map[string]interface{}{
		"limit": limit,
	}
	var market *types.Market
	if symbol != "" {
		m, err := g.GetMarket(symbol)
		if err != nil {
			return nil, err
		}
		market = m
		params["market"] = market.ID
	}
	if !since.IsZero() {
		// since 过滤携带秒级时间戳
		params["since"] = since.Unix()
	}

	resp, err := g.request(ctx, "trades/my", ScopePrivate, "GET", params)
	if err != nil {
		return nil, fmt.Errorf("fetch my trades: %w", err)
	}
	return g.parseTrades(resp, market)
}

// rememberOrder 记录最近创建的订单
func (g *Graviex) rememberOrder(order *types.Order) {
	if order == nil || order.ID == "" {
		return
	}
	g.ordersMu.Lock()
	g.lastOrders[order.ID] = order
	g.ordersMu.Unlock()
}

// LastOrder 查询本地最近订单缓存
func (g *Graviex) LastOrder(orderID string) (*types.Order, bool) {
	g.ordersMu.Lock()
	defer g.ordersMu.Unlock()
	order, ok := g.lastOrders[orderID]
	return order, ok
}
