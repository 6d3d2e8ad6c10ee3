package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
)

// APIClient talks to the bet board REST API for one game. It implements
// the Remote interface the staging board saves through.
type APIClient struct {
	baseURL string
	game    game.ID
	apiKey  string
	http    *http.Client
}

// NewAPIClient creates a client bound to one game. apiKey may be empty
// when the server runs without authentication.
func NewAPIClient(baseURL string, gameID game.ID, apiKey string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		game:    gameID,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListBets fetches the game's stored bets, most recent first.
func (c *APIClient) ListBets(ctx context.Context) ([]models.Bet, error) {
	var out struct {
		Bets []models.Bet `json:"bets"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/bets", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Bets, nil
}

// SaveBets submits one batch of entries to the reconciliation endpoint.
func (c *APIClient) SaveBets(ctx context.Context, entries []models.Entry) (models.SaveResult, error) {
	body := struct {
		Bets []models.Entry `json:"bets"`
	}{Bets: entries}

	var out models.SaveResult
	if err := c.do(ctx, http.MethodPost, "/api/save-bets", body, http.StatusCreated, &out); err != nil {
		return models.SaveResult{}, err
	}
	return out, nil
}

// DeleteBet removes the stored bet for one number.
func (c *APIClient) DeleteBet(ctx context.Context, number int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bets/%d", number), nil, http.StatusOK, nil)
}

// DeleteAllBets empties the game's partition and returns the removed count.
func (c *APIClient) DeleteAllBets(ctx context.Context) (int64, error) {
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/delete-all-bets", nil, http.StatusOK, &out); err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}

// do performs one API round-trip: marshals body when present, appends the
// game query parameter, checks the expected status and decodes into out.
func (c *APIClient) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrInvalidFormat, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.baseURL + path + "?game=" + url.QueryEscape(string(c.game))
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return apiError(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// apiError folds a non-success response into the domain error taxonomy,
// keeping the server's message.
func apiError(res *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = fmt.Sprintf("http %d", res.StatusCode)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, msg)
	case res.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", models.ErrInvalidFormat, msg)
	default:
		return fmt.Errorf("%w: %s", models.ErrStorage, msg)
	}
}
