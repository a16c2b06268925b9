package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenProvider 每次請求時讀取最新token
// 無token時回傳空字串, 該請求就不帶Authorization header
type TokenProvider interface {
	Token() string
}

// Client 後端REST API傳輸層
// 負責組request, 帶bearer token, 解析{success, data, message}信封
// 與HTTP狀態碼到錯誤碼的對應
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokenProvider TokenProvider
	logger        *zerolog.Logger
}

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithTokenProvider(provider TokenProvider) ClientOption {
	return func(c *Client) {
		c.tokenProvider = provider
	}
}

func WithLogger(logger *zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		panic("backend client initialization failed: baseURL cannot be empty")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope 後端回應信封
// data以RawMessage保留, 由各API自行decode
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do 發送請求並解析信封
// out為nil時只檢查成功與否, 否則將整份response body decode進out
//
// 錯誤:
//   - errs.NetworkErrorCode: 連線失敗
//   - errs.NotFoundCode: HTTP 404
//   - errs.UnauthenticatedCode: HTTP 401
//   - 其他非成功回應: 優先使用後端message, 無則使用預設訊息
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.New(errs.InternalErrorCode, err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errs.New(errs.InternalErrorCode, err.Error())
	}
	requestID := uuid.New().String()
	req.Header.Set(constants.RequestIDHeaderKey, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenProvider != nil {
		if token := c.tokenProvider.Token(); token != "" {
			req.Header.Set(constants.AuthorizationHeaderKey,
				fmt.Sprintf("%s %s", constants.AuthorizationTypeBearer, token))
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn().Str("method", method).Str("path", path).Err(err).Msg("backend request failed")
		}
		return errs.New(errs.NetworkErrorCode, "")
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.New(errs.NetworkErrorCode, "")
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("latency", time.Since(start)).
			Msg("backend request")
	}

	var env envelope
	//信封解析失敗不視為致命, 後端錯誤頁可能不是JSON
	_ = json.Unmarshal(respData, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return c.toAppError(resp.StatusCode, env.Message)
	}

	if out != nil {
		if err := json.Unmarshal(respData, out); err != nil {
			return errs.New(errs.InternalErrorCode, err.Error())
		}
	}
	return nil
}

// toAppError HTTP狀態碼對應錯誤碼
// 後端有message就原樣帶出, 無則用錯誤碼預設訊息
func (c *Client) toAppError(statusCode int, message string) error {
	var code errs.Code
	switch {
	case statusCode == http.StatusNotFound:
		code = errs.NotFoundCode
	case statusCode == http.StatusUnauthorized:
		code = errs.UnauthenticatedCode
	case statusCode == http.StatusForbidden:
		code = errs.UnauthorizedCode
	case statusCode >= 500:
		code = errs.InternalErrorCode
	default:
		code = errs.BadRequestCode
	}
	return errs.New(code, message)
}
