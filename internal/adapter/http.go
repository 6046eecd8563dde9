package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
	"github.com/Mateus-A-Soares/Instoc/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if httpAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(httpAddress string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(httpAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/jwt and stores the token returned in the response body via
// SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) error {
	var body struct {
		Token string `json:"token"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "senha": password}).
		SetResult(&body).
		Post("/api/v1/jwt")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if body.Token == "" {
		return fmt.Errorf("login: empty token in response")
	}

	h.SetToken(body.Token)
	return nil
}

// ListEnvironments implements [ServerAdapter] over GET /api/v1/ambiente.
func (h *httpServerAdapter) ListEnvironments(ctx context.Context) ([]*models.Environment, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/ambiente")
	if err != nil {
		return nil, fmt.Errorf("list environments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var environments []*models.Environment
	if err = json.Unmarshal(resp.Body(), &environments); err != nil {
		return nil, fmt.Errorf("decode environments response: %w", err)
	}

	return environments, nil
}

// GetEnvironment implements [ServerAdapter] over GET /api/v1/ambiente/{id}.
func (h *httpServerAdapter) GetEnvironment(ctx context.Context, id int64) (*models.Environment, error) {
	var environment models.Environment

	resp, err := h.authedRequest(ctx).
		SetResult(&environment).
		Get(fmt.Sprintf("/api/v1/ambiente/%d", id))
	if err != nil {
		return nil, fmt.Errorf("get environment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &environment, nil
}

// CreateEnvironment implements [ServerAdapter] over POST /api/v1/ambiente.
func (h *httpServerAdapter) CreateEnvironment(ctx context.Context, description string) (*models.Environment, error) {
	var environment models.Environment

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"descricao": description}).
		SetResult(&environment).
		Post("/api/v1/ambiente")
	if err != nil {
		return nil, fmt.Errorf("create environment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &environment, nil
}

// DeleteEnvironment implements [ServerAdapter] over
// DELETE /api/v1/ambiente/{id}. Returns [ErrConflict] (wrapped) on HTTP 409.
func (h *httpServerAdapter) DeleteEnvironment(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/v1/ambiente/%d", id))
	if err != nil {
		return fmt.Errorf("delete environment request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListItems implements [ServerAdapter] over GET /api/v1/item.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]*models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/item")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []*models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode items response: %w", err)
	}

	return items, nil
}

// CreateItem implements [ServerAdapter] over POST /api/v1/item.
func (h *httpServerAdapter) CreateItem(ctx context.Context, typeID, environmentID int64) (*models.Item, error) {
	var item models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"tipo": typeID, "ambienteAtual": environmentID}).
		SetResult(&item).
		Post("/api/v1/item")
	if err != nil {
		return nil, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &item, nil
}

// MoveItem implements [ServerAdapter] over
// POST /api/v1/item/{id}/movimentacao. Returns [ErrConflict] (wrapped) when
// the item already occupies the target environment.
func (h *httpServerAdapter) MoveItem(ctx context.Context, itemID, nextEnvironmentID int64) (*models.Movement, error) {
	var movement models.Movement

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]int64{"ambientePosterior": nextEnvironmentID}).
		SetResult(&movement).
		Post(fmt.Sprintf("/api/v1/item/%d/movimentacao", itemID))
	if err != nil {
		return nil, fmt.Errorf("move item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &movement, nil
}

// ListMovements implements [ServerAdapter] over GET /api/v1/movimentacao.
func (h *httpServerAdapter) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/movimentacao")
	if err != nil {
		return nil, fmt.Errorf("list movements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var movements []*models.Movement
	if err = json.Unmarshal(resp.Body(), &movements); err != nil {
		return nil, fmt.Errorf("decode movements response: %w", err)
	}

	return movements, nil
}

// ListItemTypes implements [ServerAdapter] over GET /api/v1/item/tipo.
func (h *httpServerAdapter) ListItemTypes(ctx context.Context) ([]*models.ItemType, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/item/tipo")
	if err != nil {
		return nil, fmt.Errorf("list item types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var itemTypes []*models.ItemType
	if err = json.Unmarshal(resp.Body(), &itemTypes); err != nil {
		return nil, fmt.Errorf("decode item types response: %w", err)
	}

	return itemTypes, nil
}
