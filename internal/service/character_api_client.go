package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/domain"
	"github.com/kapu/character-lookup-go/pkg/errors"
	"go.uber.org/zap"
)

// CharacterFetcher resolves a normalized term into a character record.
type CharacterFetcher interface {
	FetchCharacter(ctx context.Context, term string) (*domain.Character, error)
}

type CharacterAPIClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

func NewCharacterAPIClient(httpClient *http.Client, baseURL, userAgent string, logger *zap.Logger) *CharacterAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIConfig.DefaultTimeout}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = constants.APIConfig.DefaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = constants.APIConfig.DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CharacterAPIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		logger:     logger,
	}
}

// FetchCharacter issues GET {base}/{term} and decodes the record.
func (c *CharacterAPIClient) FetchCharacter(ctx context.Context, term string) (*domain.Character, error) {
	body, err := c.DoRequest(ctx, "/"+url.PathEscape(term))
	if err != nil {
		return nil, err
	}

	character, err := domain.ParseCharacter(body)
	if err != nil {
		c.logger.Warn("Character payload rejected",
			zap.String("term", term),
			zap.Int("bytes", len(body)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("decode character %q: %w", term, err)
	}

	return character, nil
}

// DoRequest performs a single GET against the API. There are no retries.
func (c *CharacterAPIClient) DoRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Character request failed",
			zap.String("url", reqURL),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, errors.NewAPIError(fmt.Sprintf("Server error: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"url": reqURL,
		})
	}

	if resp.StatusCode >= 400 {
		return nil, errors.NewAPIError(fmt.Sprintf("Client error: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"url":  reqURL,
			"body": string(body),
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewAPIError(fmt.Sprintf("Unexpected status: %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"url": reqURL,
		})
	}

	c.logger.Debug("Character request succeeded",
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
	)
	return body, nil
}
