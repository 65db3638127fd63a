// Package client implements the remote service interfaces over HTTP, so a
// real backend can replace the in-process fixtures without touching callers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quickbank/quickbank/internal/models"
)

// Client talks to a backend serving the v1 contract. It satisfies every
// service interface; Auth, Transactions, Recipients, Wallet and Transfers
// return namespace views sharing this client.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/signup", data, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/v1/transactions", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetRecipients(ctx context.Context) ([]models.Recipient, error) {
	var list []models.Recipient
	if err := c.do(ctx, http.MethodGet, "/v1/recipients", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetBalance(ctx context.Context) (*models.WalletBalance, error) {
	var balance models.WalletBalance
	if err := c.do(ctx, http.MethodGet, "/v1/wallet/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) SendMoney(ctx context.Context, req models.SendMoneyRequest) (*models.SendMoneyResult, error) {
	var result models.SendMoneyResult
	if err := c.do(ctx, http.MethodPost, "/v1/send-money", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s (status %d)", payload.Message, resp.StatusCode)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
