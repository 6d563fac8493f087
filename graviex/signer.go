package graviex

import (
	"github.com/lemconn/gravlink/common"
)

// Scope 接口访问级别
type Scope string

const (
	// ScopePublic 公共接口，无需签名
	ScopePublic Scope = "public"
	// ScopePrivate 私有接口，需要签名
	ScopePrivate Scope = "private"
)

// SignedRequest 已构造好的请求
type SignedRequest struct {
	// URL 完整请求地址（GET 请求带查询串）
	URL string
	// Method 请求方法
	Method string
	// Body 请求体（POST 请求为表单编码的参数）
	Body string
	// Headers 请求头
	Headers map[string]string
}

// Signer Graviex 签名工具
//
// 签名流程：参数附加毫秒 tonce 与 access_key 后按键字典序排序，
// 对 "METHOD|PATH|排序后参数的URL编码" 计算 HMAC-SHA256（小写hex），
// signature 在编码完成后追加，自身不参与签名。
type Signer struct {
	apiKey    string
	secretKey string
	baseURL   string
	nonce     func() int64
}

// NewSigner 创建签名工具
func NewSigner(apiKey, secretKey, baseURL string) *Signer {
	return &Signer{
		apiKey:    apiKey,
		secretKey: secretKey,
		baseURL:   baseURL,
		nonce:     common.GetTimestamp,
	}
}

// SetNonceFunc 替换 tonce 来源（毫秒时钟），用于测试或宿主注入
func (s *Signer) SetNonceFunc(nonce func() int64) {
	if nonce != nil {
		s.nonce = nonce
	}
}

// Sign 构造请求
// path: 不含版本前缀的接口路径，如 "tickers"
// scope: public / private
// method: GET / POST
// params: 请求参数，调用方的 map 不会被修改
func (s *Signer) Sign(path string, scope Scope, method string, params map[string]interface{}) *SignedRequest {
	fullPath := "/api/" + graviexVersion + "/" + path

	merged := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		merged[k] = v
	}
	merged["tonce"] = s.nonce()
	if scope == ScopePrivate {
		merged["access_key"] = s.apiKey
	}

	encoded := common.BuildQueryString(merged)
	if scope == ScopePrivate {
		payload := method + "|" + fullPath + "|" + encoded
		signature := common.SignHMAC256(payload, s.secretKey)
		// signature 追加在已排序的编码结果之后，不参与排序和签名
		encoded += "&signature=" + signature
	}

	req := &SignedRequest{
		URL:     s.baseURL + fullPath,
		Method:  method,
		Headers: make(map[string]string),
	}
	if method == "POST" {
		req.Body = encoded
		req.Headers["Content-Type"] = "application/x-www-form-urlencoded"
	} else if encoded != "" {
		req.URL += "?" + encoded
	}
	return req
}
