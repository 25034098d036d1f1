package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Clients struct {
	*HeartsAPI
	*ChallengesAPI
	*AchievementsAPI
}

func InitClients(baseURL, token string, timeout time.Duration) Clients {
	base := newBaseClient(baseURL, token, timeout)
	return Clients{
		HeartsAPI:       NewHeartsAPI(base),
		ChallengesAPI:   NewChallengesAPI(base),
		AchievementsAPI: NewAchievementsAPI(base),
	}
}

type baseClient struct {
	baseURL string
	token   string
	// timeout applies only to calls whose context carries no deadline, so
	// callers can set longer per-call deadlines.
	timeout time.Duration
	http    *http.Client
}

func newBaseClient(baseURL, token string, timeout time.Duration) *baseClient {
	return &baseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: timeout,
		http:    &http.Client{},
	}
}

func (b *baseClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return b.do(ctx, http.MethodGet, path, nil, out)
}

func (b *baseClient) post(ctx context.Context, path string, body, out any) error {
	return b.do(ctx, http.MethodPost, path, body, out)
}

func (b *baseClient) do(ctx context.Context, method, path string, body, out any) error {
	if b.token == "" {
		return &APIError{Method: method, Path: path, Kind: ErrUnauthenticated, Message: "missing token"}
	}

	if _, ok := ctx.Deadline(); !ok && b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return &APIError{Method: method, Path: path, Kind: transportKind(ctx, err), Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Kind:       kindForStatus(resp.StatusCode),
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Kind: ErrServerRejected, Message: "malformed response: " + err.Error()}
	}
	return nil
}

func transportKind(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrUnreachable
}
