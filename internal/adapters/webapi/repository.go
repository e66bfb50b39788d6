package webapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/pkg/errors"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	clientTimeout       = 5 * time.Second
	sessionsEndpoint    = "/sessions/"
	healthCheckEndpoint = "/health"
)

type repository struct {
	cli  *http.Client
	addr string
}

// New returns a client for the server's HTTP endpoints; addr is a base URL
// such as "http://localhost:8080".
func New(addr string) repository {
	return repository{
		cli:  &http.Client{Timeout: clientTimeout},
		addr: addr,
	}
}

func (r repository) HealthCheck(ctx context.Context) (*domain.HealthCheckResponse, error) {
	result := new(domain.HealthCheckResponse)
	if err := r.get(ctx, healthCheckEndpoint, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r repository) Session(ctx context.Context, sessionUuid string) (*domain.Snapshot, error) {
	result := new(domain.Snapshot)
	if err := r.get(ctx, sessionsEndpoint+url.PathEscape(sessionUuid), result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r repository) get(ctx context.Context, endpoint string, result any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, r.addr+endpoint, nil)
	if err != nil {
		return errors.WithMessage(err, "new get request")
	}
	resp, err := r.cli.Do(request)
	if err != nil {
		return errors.WithMessagef(err, "call http endpoint '%s'", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrSessionNotFound
	default:
		return errors.Errorf("unexpected response status '%s'", resp.Status)
	}
	if err := jsoniter.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.WithMessage(err, "decode json response body")
	}
	return nil
}
