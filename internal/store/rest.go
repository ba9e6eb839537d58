package store

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

	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/pkg/constants"
)

// APIError — ошибка, которую вернул REST API хранилища
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store responded %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("store responded %d: %s", e.Status, e.Message)
}

// RESTStore пишет в таблицу через PostgREST API хостинга (service role key)
type RESTStore struct {
	baseURL    string
	serviceKey string
	table      string
	client     *http.Client
}

// NewRESTStore создаёт REST-хранилище; timeout <= 0 оставляет клиент без таймаута
func NewRESTStore(baseURL, serviceKey, table string, timeout time.Duration) *RESTStore {
	if table == "" {
		table = constants.TableUsers
	}
	return &RESTStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		table:      table,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *RESTStore) endpoint() string {
	q := url.Values{}
	q.Set("on_conflict", constants.ConflictKeyEmail)
	return s.baseURL + constants.BasePathREST + "/" + url.PathEscape(s.table) + "?" + q.Encode()
}

func (s *RESTStore) UpsertUser(ctx context.Context, u *models.User) (*models.User, error) {
	body, err := json.Marshal([]*models.User{u})
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, constants.MethodPost, s.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.HeaderAPIKey, s.serviceKey)
	req.Header.Set(constants.HeaderAuthorization, "Bearer "+s.serviceKey)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderPrefer, constants.PreferUpsert)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, data)
	}

	var rows []models.User
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	if len(rows) == 0 {
		// return=minimal или прокси вырезал тело — считаем записанным то, что отправили
		written := *u
		return &written, nil
	}
	return &rows[0], nil
}

func (s *RESTStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func decodeAPIError(status int, data []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Code: payload.Code, Message: payload.Message}
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
