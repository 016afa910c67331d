package mapbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"mileage-service/internal/domain"

	"github.com/goccy/go-json"
)

// Error bodies are truncated to this many bytes in ServiceError messages.
const maxErrorBody = 512

type apiError struct {
	Message string `json:"message"`
}

func (m *MapboxProvider) newRequest(
	ctx context.Context,
	endpoint string,
	q url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q.Set("access_token", m.accessToken)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// getJSON issues a GET and decodes a 2xx body into out. Any other outcome is
// reported as a *domain.ServiceError.
func (m *MapboxProvider) getJSON(
	ctx context.Context,
	op string,
	endpoint string,
	q url.Values,
	out any,
) error {
	req, err := m.newRequest(ctx, endpoint, q)
	if err != nil {
		return &domain.ServiceError{Op: op, Err: err}
	}

	resp, err := m.session.Do(req)
	if err != nil {
		// url.Error carries the full URL, access token included.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return &domain.ServiceError{Op: op, Message: "execute request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(b))

		var ae apiError
		if json.Unmarshal(b, &ae) == nil && ae.Message != "" {
			msg = ae.Message
		}
		return &domain.ServiceError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ServiceError{Op: op, Message: "decode response", Err: err}
	}

	return nil
}
