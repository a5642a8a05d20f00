package bcvclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tallerapp/finanzas-api/internal/config"
)

type Client interface {
	GetRatePage(ctx context.Context) ([]byte, error)
}

type BCVClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient crea el cliente HTTP hacia la página del BCV. El certificado
// del sitio no valida contra las cadenas estándar, por eso se omite la
// verificación TLS.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.BCV.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BCVClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
		config: cfg,
	}
}

func (c *BCVClient) GetRatePage(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BCV.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("respuesta inesperada del BCV: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
