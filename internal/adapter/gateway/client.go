package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"

	"github.com/rs/zerolog"
)

const signatureHeader = "X-Gateway-Signature"

// Client implements ports.ValueTransferGateway over the transfer gateway's
// HTTP API. Requests carry an HMAC signature over the body so the gateway
// can authenticate the ledger.
type Client struct {
	baseURL    string
	secret     string
	signer     ports.MessageSigner
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a transfer gateway client.
func NewClient(baseURL, secret string, timeout time.Duration, signer ports.MessageSigner, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		signer:     signer,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "gateway").Logger(),
	}
}

type transferRequest struct {
	Asset  domain.Asset `json:"asset"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Amount int64        `json:"amount"`
}

type balanceResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type gatewayError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Transfer moves amount between two gateway accounts. Any non-200 response
// is a failure; the caller rolls back the surrounding operation.
func (c *Client) Transfer(ctx context.Context, asset domain.Asset, from, to string, amount int64) error {
	body, err := json.Marshal(transferRequest{Asset: asset, From: from, To: to, Amount: amount})
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, c.signer.Sign(c.secret, string(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway transfer: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		gwErr := decodeError(resp.Body)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("gateway_code", gwErr.Code).
			Str("asset", string(asset)).
			Int64("amount", amount).
			Msg("Gateway rejected transfer")
		return fmt.Errorf("gateway transfer failed (%d): %s", resp.StatusCode, gwErr.Message)
	}
	return nil
}

// BalanceOf returns the account's spendable balance for the asset.
func (c *Client) BalanceOf(ctx context.Context, asset domain.Asset, account string) (int64, error) {
	url := fmt.Sprintf("%s/v1/balances/%s/%s", c.baseURL, asset, account)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build balance request: %w", err)
	}
	req.Header.Set(signatureHeader, c.signer.Sign(c.secret, url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("gateway balance: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		gwErr := decodeError(resp.Body)
		return 0, fmt.Errorf("gateway balance failed (%d): %s", resp.StatusCode, gwErr.Message)
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}
	return out.Balance, nil
}

func decodeError(r io.Reader) gatewayError {
	var gwErr gatewayError
	if err := json.NewDecoder(r).Decode(&gwErr); err != nil {
		gwErr.Message = "unreadable gateway error"
	}
	return gwErr
}
