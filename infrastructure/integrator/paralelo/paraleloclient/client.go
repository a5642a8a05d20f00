package paraleloclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tallerapp/finanzas-api/internal/config"
)

type Client interface {
	GetMarketPrice(ctx context.Context) ([]byte, error)
}

type ParaleloClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Paralelo.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ParaleloClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *ParaleloClient) GetMarketPrice(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Paralelo.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("respuesta inesperada de la API de precios: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
