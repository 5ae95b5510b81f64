// Package chatapi is the HTTP client for the ConvoSage backend.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nchapman/convosage/internal/agent"
	"github.com/nchapman/convosage/internal/version"
)

type Client struct {
	baseURL string
	client  *http.Client
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryResponse struct {
	SessionID string            `json:"session_id"`
	History   []agent.Message   `json:"history"`
	Metadata  agent.SessionInfo `json:"metadata"`
}

type StatsResponse struct {
	ActiveSessions int `json:"active_sessions"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	AppName string `json:"app_name"`
	Version string `json:"version"`
}

func NewClient(host string, port int) *Client {
	return NewClientFromURL(fmt.Sprintf("http://%s:%d", host, port))
}

func NewClientFromURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (api *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := api.get(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// SendMessage posts one chat message. An empty sessionID starts a new
// session; the response carries the ID to use for the next turn.
func (api *Client) SendMessage(ctx context.Context, message, sessionID string) (*ChatResponse, error) {
	req := ChatRequest{Message: message, SessionID: sessionID}

	var response ChatResponse
	if err := api.post(ctx, "/chat", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (api *Client) History(ctx context.Context, sessionID string) (*HistoryResponse, error) {
	var history HistoryResponse
	if err := api.get(ctx, "/chat/history/"+sessionID, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (api *Client) DeleteSession(ctx context.Context, sessionID string) error {
	url := fmt.Sprintf("%s/chat/session/%s", api.baseURL, sessionID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("User-Agent", version.UserAgent())

	resp, err := api.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete session failed: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (api *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var stats StatsResponse
	if err := api.get(ctx, "/chat/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (api *Client) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, api.baseURL+path, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("User-Agent", version.UserAgent())

	resp, err := api.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (api *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, api.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	resp, err := api.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed: HTTP %d: %s", resp.StatusCode, string(respBody))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
