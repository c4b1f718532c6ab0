package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"whisper/internal/domain"
	"whisper/internal/server"
)

// Client talks to a whisperd relay.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for the relay at base, e.g. http://127.0.0.1:8551.
func New(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Faucet funds an account on the relay's host.
func (c *Client) Faucet(ctx context.Context, account domain.AccountID, amount domain.Amount) error {
	return c.post(ctx, "/faucet", server.FaucetRequest{Account: account, Amount: amount}, nil)
}

// RegisterKey registers or rotates the caller's messaging key.
func (c *Client) RegisterKey(ctx context.Context, caller domain.AccountID, deposit domain.Amount, pubkey string, displayName *string) error {
	return c.post(ctx, "/register", server.RegisterRequest{
		Caller:       caller,
		Deposit:      deposit,
		X25519Pubkey: pubkey,
		DisplayName:  displayName,
	}, nil)
}

// SendMessage relays a direct message.
func (c *Client) SendMessage(ctx context.Context, caller, to domain.AccountID, body, nonce string, recipientKeyVersion uint32, replyTo *string) error {
	return c.post(ctx, "/messages", server.MessageRequest{
		Caller:              caller,
		To:                  to,
		EncryptedBody:       body,
		Nonce:               nonce,
		RecipientKeyVersion: recipientKeyVersion,
		ReplyTo:             replyTo,
	}, nil)
}

// SendPaidMessage relays a direct message with attached value forwarded to
// the recipient.
func (c *Client) SendPaidMessage(ctx context.Context, caller, to domain.AccountID, amount domain.Amount, body, nonce string, recipientKeyVersion uint32, replyTo *string) error {
	return c.post(ctx, "/messages/paid", server.MessageRequest{
		Caller:              caller,
		Deposit:             amount,
		To:                  to,
		EncryptedBody:       body,
		Nonce:               nonce,
		RecipientKeyVersion: recipientKeyVersion,
		ReplyTo:             replyTo,
	}, nil)
}

// CreateGroup creates a group chat.
func (c *Client) CreateGroup(ctx context.Context, caller domain.AccountID, deposit domain.Amount, id domain.GroupID, name *string, memberKeys string) error {
	return c.post(ctx, "/groups", server.CreateGroupRequest{
		Caller:     caller,
		Deposit:    deposit,
		GroupID:    id,
		Name:       name,
		MemberKeys: memberKeys,
	}, nil)
}

// SendGroupMessage relays a message to a group.
func (c *Client) SendGroupMessage(ctx context.Context, caller domain.AccountID, id domain.GroupID, body, nonce string, groupKeyVersion uint32) error {
	return c.post(ctx, "/groups/"+url.PathEscape(id.String())+"/messages", server.GroupMessageRequest{
		Caller:          caller,
		EncryptedBody:   body,
		Nonce:           nonce,
		GroupKeyVersion: groupKeyVersion,
	}, nil)
}

// GetProfile fetches an account's profile; ok is false when none is
// registered.
func (c *Client) GetProfile(ctx context.Context, account domain.AccountID) (domain.Profile, bool, error) {
	var p domain.Profile
	found, err := c.getJSON(ctx, "/profiles/"+url.PathEscape(account.String()), &p)
	return p, found, err
}

// HasProfile reports whether account has a registered key.
func (c *Client) HasProfile(ctx context.Context, account domain.AccountID) (bool, error) {
	var out server.ExistsResponse
	if _, err := c.getJSON(ctx, "/profiles/"+url.PathEscape(account.String())+"/exists", &out); err != nil {
		return false, err
	}
	return out.Registered, nil
}

// GetGroup fetches group metadata; ok is false when the group does not
// exist.
func (c *Client) GetGroup(ctx context.Context, id domain.GroupID) (domain.GroupChat, bool, error) {
	var g domain.GroupChat
	found, err := c.getJSON(ctx, "/groups/"+url.PathEscape(id.String()), &g)
	return g, found, err
}

// Stats fetches the aggregate snapshot.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	_, err := c.getJSON(ctx, "/stats", &st)
	return st, err
}

// Balance fetches an account's host balance.
func (c *Client) Balance(ctx context.Context, account domain.AccountID) (domain.Amount, error) {
	var out server.BalanceResponse
	_, err := c.getJSON(ctx, "/balances/"+url.PathEscape(account.String()), &out)
	return out.Balance, err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", path, reason(resp))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// getJSON fetches path into out. A 404 reports found=false instead of an
// error, matching the contract's absence-is-not-an-error reads.
func (c *Client) getJSON(ctx context.Context, path string, out any) (found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode/100 != 2 {
		return false, fmt.Errorf("relay get %s: %s", path, reason(resp))
	}
	return true, json.NewDecoder(resp.Body).Decode(out)
}

// reason pulls the relay's error message out of a rejection, falling back
// to the HTTP status.
func reason(resp *http.Response) string {
	var e server.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return e.Error
	}
	return resp.Status
}
