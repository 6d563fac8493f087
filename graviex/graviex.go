package graviex

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lemconn/gravlink/common"
	"github.com/lemconn/gravlink/exchange"
	"github.com/lemconn/gravlink/logger"
	"github.com/lemconn/gravlink/types"
)

const (
	graviexName    = "graviex"
	graviexBaseURL = "https://graviex.net"
	graviexVersion = "v3"

	// graviexRateLimit 交易所建议的请求间隔
	graviexRateLimit = 1000 * time.Millisecond
)

// exchangeConfig 交易所静态配置，启动时构造一次
// 费率表、精度与提现手续费表为交易所公开资料中的固定值。
type exchangeConfig struct {
	makerFee           float64
	takerFee           float64
	amountPrecision    int
	pricePrecision     int
	costPrecision      int
	minAmount          float64
	withdrawFees       map[string]float64
	defaultWithdrawFee float64
}

func defaultExchangeConfig() exchangeConfig {
	return exchangeConfig{
		makerFee:        0.0,
		takerFee:        0.2 / 100,
		amountPrecision: 8,
		pricePrecision:  8,
		costPrecision:   8,
		minAmount:       0.001,
		withdrawFees: map[string]float64{
			"BTC":   0.0004,
			"ETH":   0.0055,
			"DOGE":  2.0,
			"NYC":   1.0,
			"XMR":   0.02,
			"PIVX":  0.2,
			"NEM":   0.05,
			"SCAVO": 5.0,
			"SEDO":  5.0,
			"USDT":  3.0,
			"GDM":   0.3,
			"PIRL":  0.005,
			"PK":    0.1,
			"ORM":   10,
			"NCP":   10,
			"ETM":   10,
			"USD":   0,
			"EUR":   0,
			"RUB":   0,
		},
		defaultWithdrawFee: 0.002,
	}
}

// Graviex Graviex 交易所实现
type Graviex struct {
	client   common.Transport
	signer   *Signer
	registry *Registry
	config   exchangeConfig
	log      *logger.Log

	// lastOrders 本地最近订单缓存，仅在创建订单后按ID记录
	lastOrders map[string]*types.Order
	ordersMu   sync.Mutex
}

// New 创建 Graviex 交易所实例
func New(apiKey, secretKey string, options map[string]interface{}) (exchange.Exchange, error) {
	baseURL := graviexBaseURL
	proxyURL := ""
	debug := false
	rateLimit := graviexRateLimit

	if v, ok := options["baseURL"].(string); ok && v != "" {
		baseURL = v
	}
	if v, ok := options["proxy"].(string); ok {
		proxyURL = v
	}
	if v, ok := options["debug"].(bool); ok {
		debug = v
	}
	if v, ok := options["rateLimit"].(time.Duration); ok {
		rateLimit = v
	}

	g := &Graviex{
		signer:     NewSigner(apiKey, secretKey, baseURL),
		registry:   NewRegistry(),
		config:     defaultExchangeConfig(),
		log:        logger.GetLogger(),
		lastOrders: make(map[string]*types.Order),
	}

	if v, ok := options["nonce"].(func() int64); ok {
		g.signer.SetNonceFunc(v)
	}

	// 宿主框架可替换传输层
	if v, ok := options["transport"].(common.Transport); ok && v != nil {
		g.client = v
		return g, nil
	}

	client := common.NewHTTPClient()
	client.SetRateLimit(rateLimit)
	client.SetDebug(debug)
	if v, ok := options["timeout"].(time.Duration); ok {
		client.SetTimeout(v)
	}
	if proxyURL != "" {
		if err := client.SetProxy(proxyURL); err != nil {
			return nil, fmt.Errorf("set proxy: %w", err)
		}
	}
	g.client = client
	return g, nil
}

// Name 返回交易所名称
func (g *Graviex) Name() string {
	return graviexName
}

// Registry 返回市场注册表，宿主框架可直接读取
func (g *Graviex) Registry() *Registry {
	return g.registry
}

// request 发出一次请求：签名 -> 传输 -> 错误分类
func (g *Graviex) request(ctx context.Context, path string, scope Scope, method string, params map[string]interface{}) ([]byte, error) {
	req := g.signer.Sign(path, scope, method, params)
	status, body, err := g.client.Do(ctx, req.Method, req.URL, req.Body, req.Headers)
	if err != nil {
		return nil, err
	}
	return HandleErrors(status, body)
}

// LoadMarkets 加载市场信息
// 使用 tickers 接口而非 markets 接口：返回字段更全，且带有判断市场
// 是否开放所需的 api/wstatus 标志。刷新时整表原子替换。
func (g *Graviex) LoadMarkets(ctx context.Context, reload bool) error {
	if !reload && g.registry.Size() > 0 {
		return nil
	}

	resp, err := g.request(ctx, "tickers", ScopePublic, "GET", nil)
	if err != nil {
		return fmt.Errorf("fetch tickers: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(resp, &entries); err != nil {
		return fmt.Errorf("unmarshal tickers: %w", err)
	}

	markets := make([]*types.Market, 0, len(entries))
	for id, raw := range entries {
		markets = append(markets, g.parseMarket(id, raw))
	}
	g.registry.ReplaceMarkets(markets)
	g.log.WithFields(logger.Fields{
		"exchange": graviexName,
		"markets":  len(markets),
	}).Debug("markets loaded")
	return nil
}

// FetchMarkets 获取市场列表
func (g *Graviex) FetchMarkets(ctx context.Context) ([]*types.Market, error) {
	if err := g.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	return g.registry.Markets(), nil
}

// GetMarket 获取市场信息
func (g *Graviex) GetMarket(symbol string) (*types.Market, error) {
	market, ok := g.registry.MarketBySymbol(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", exchange.ErrMarketNotFound, symbol)
	}
	return market, nil
}

var _ exchange.Exchange = (*Graviex)(nil)
