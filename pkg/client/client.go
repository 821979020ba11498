// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client provides a typed Go client for the fintrack REST API.
//
// The client holds the token pair issued at login and attaches the access
// token to every authenticated request. Refresh is explicit: when a call
// fails with [ErrUnauthorized] the caller decides whether to Refresh and
// retry or to re-authenticate.
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fintrack/fintrack/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the connection settings of the API client.
type Config struct {
	// BaseURL is the root address of the API server, e.g.
	// "http://localhost:8080".
	BaseURL string

	// Timeout bounds every single HTTP request.
	Timeout time.Duration
}

// Client is a typed wrapper over the fintrack REST API. It is safe for
// concurrent use.
type Client struct {
	client *resty.Client

	mu   sync.RWMutex
	pair models.TokenPair
}

// New constructs a Client. Zero config fields fall back to localhost and a
// 15 second timeout.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// SetTokenPair replaces the stored session tokens.
func (c *Client) SetTokenPair(pair models.TokenPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pair = pair
}

// TokenPair returns the currently held session tokens.
func (c *Client) TokenPair() models.TokenPair {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pair
}

func (c *Client) request(ctx context.Context) *resty.Request {
	request := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if access := c.TokenPair().AccessToken; access != "" {
		request.SetHeader("Authorization", "Bearer "+access)
	}

	return request
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, login, password string) (models.User, error) {
	var user models.User

	resp, err := c.request(ctx).
		SetBody(map[string]string{"username": username, "login": login, "password": password}).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login authenticates and stores the issued token pair on the client.
func (c *Client) Login(ctx context.Context, login, password string) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := c.request(ctx).
		SetBody(models.Credentials{Login: login, Password: password}).
		SetResult(&pair).
		Post("/api/login")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	c.SetTokenPair(pair)
	return pair, nil
}

// Refresh exchanges the stored refresh token for a fresh pair. The old
// pair is discarded either way: a failed exchange means the session is
// gone and the user must log in again.
func (c *Client) Refresh(ctx context.Context) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := c.request(ctx).
		SetQueryParam("refresh_token", c.TokenPair().RefreshToken).
		SetResult(&pair).
		Post("/api/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.SetTokenPair(models.TokenPair{})
		return models.TokenPair{}, err
	}

	c.SetTokenPair(pair)
	return pair, nil
}

// Logout invalidates the server-side session and drops the stored pair.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.request(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.SetTokenPair(models.TokenPair{})
	return nil
}

// CurrentUser fetches the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	return user, c.get(ctx, "/api/users/me", &user)
}

// CreateCategory creates an owned category.
func (c *Client) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	var category models.Category
	return category, c.post(ctx, "/api/categories", map[string]string{"name": name}, &category)
}

// Categories lists the caller's categories together with the system ones.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	return categories, c.get(ctx, "/api/categories", &categories)
}

// DeleteCategory removes an owned category. Fails with ErrBadRequest
// while transactions still reference it.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/categories/"+strconv.FormatInt(id, 10))
}

// CreateAccount creates a money account.
func (c *Client) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	var created models.Account
	return created, c.post(ctx, "/api/accounts", account, &created)
}

// Accounts lists the caller's accounts.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	return accounts, c.get(ctx, "/api/accounts", &accounts)
}

// CreateTransaction records a money movement.
func (c *Client) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	var created models.Transaction
	return created, c.post(ctx, "/api/transactions", transaction, &created)
}

// Transactions fetches one page of the transaction list.
func (c *Client) Transactions(ctx context.Context, query models.TransactionPageQuery) (models.TransactionPage, error) {
	var page models.TransactionPage

	request := c.request(ctx).SetResult(&page)
	if query.Limit > 0 {
		request.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		request.SetQueryParam("offset", strconv.Itoa(query.Offset))
	}
	if query.SortBy != "" {
		request.SetQueryParam("sort_by", query.SortBy)
	}
	if query.SortOrder != "" {
		request.SetQueryParam("sort_order", query.SortOrder)
	}

	resp, err := request.Get("/api/transactions")
	if err != nil {
		return models.TransactionPage{}, fmt.Errorf("transactions request: %w", err)
	}

	return page, mapHTTPError(resp)
}

// DeleteTransaction soft-deletes a transaction. Repeating the call on the
// same id succeeds.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/transactions/"+strconv.FormatInt(id, 10))
}

// UpdatedTransactionIDs polls the change feed: ids of transactions,
// deletions included, touched at or after since.
func (c *Client) UpdatedTransactionIDs(ctx context.Context, since time.Time) ([]int64, error) {
	var ids []int64

	resp, err := c.request(ctx).
		SetQueryParam("updated_since", strconv.FormatInt(since.Unix(), 10)).
		SetResult(&ids).
		Get("/api/transactions/updated")
	if err != nil {
		return nil, fmt.Errorf("change feed request: %w", err)
	}

	return ids, mapHTTPError(resp)
}

// CompleteGoal marks a goal reached.
func (c *Client) CompleteGoal(ctx context.Context, id int64) (models.Goal, error) {
	var goal models.Goal
	return goal, c.patch(ctx, "/api/goals/"+strconv.FormatInt(id, 10)+"/complete", &goal)
}

// DeactivateReminder pauses a reminder without deleting it.
func (c *Client) DeactivateReminder(ctx context.Context, id int64) (models.Reminder, error) {
	var reminder models.Reminder
	return reminder, c.patch(ctx, "/api/reminders/"+strconv.FormatInt(id, 10)+"/deactivate", &reminder)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	resp, err := c.request(ctx).SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	resp, err := c.request(ctx).SetBody(body).SetResult(result).Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) patch(ctx context.Context, path string, result any) error {
	resp, err := c.request(ctx).SetResult(result).Patch(path)
	if err != nil {
		return fmt.Errorf("patch %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.request(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return mapHTTPError(resp)
}
