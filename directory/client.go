package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hotel-admin-backend/models"
	"hotel-admin-backend/workflow"
)

// Client implements workflow.Directory over the directory's REST API, for
// deployments where the console backend fronts a separate booking service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) CreateGuest(ctx context.Context, payload workflow.CreateGuestPayload) (models.Guest, error) {
	var guest models.Guest
	err := c.do(ctx, http.MethodPost, "/huespedes", payload, &guest)
	return guest, err
}

func (c *Client) CreateReservation(ctx context.Context, payload workflow.CreateReservationPayload) (models.Reservation, error) {
	var res models.Reservation
	err := c.do(ctx, http.MethodPost, "/reservas", payload, &res)
	return res, err
}

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, "/habitaciones", nil, &rooms)
	return rooms, err
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: connection refused, DNS, timeout.
		return &workflow.ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &workflow.ConnectivityError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return classifyResponse(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// errorBody covers the failure shapes the directory emits: a plain message,
// a per-field error map, or both nested under a data envelope.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// classifyResponse is the single point mapping directory failure shapes to
// the workflow taxonomy: field errors, then conflict status, then message,
// then a bare remote rejection.
func classifyResponse(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	if len(body.Errors) > 0 {
		return &workflow.RemoteValidationError{Errors: body.Errors}
	}
	if status == http.StatusConflict {
		return &workflow.RemoteConflictError{Msg: body.Message}
	}
	return &workflow.RemoteError{Msg: body.Message}
}
