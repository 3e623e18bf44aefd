// Package inference : HTTP клиент внешнего сервиса оценки риска диабета
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"health-tracker-server/config"
	"health-tracker-server/internal/model"
)

const defaultTimeout = 5 * time.Second

type predictRequest struct {
	Features model.CheckInput `json:"features"`
}

type predictResponse struct {
	Probability *float64 `json:"probability"`
	Label       string   `json:"label"`
}

type Client struct {
	url  string
	http *http.Client
}

// NewClient : nil при пустом URL, оценка тогда отключена
func NewClient(cfg *config.InferenceConfig) *Client {
	if cfg == nil || cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:  cfg.URL,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Predict(ctx context.Context, input model.CheckInput) (*model.Prediction, error) {
	body, err := json.Marshal(predictRequest{Features: input})
	if err != nil {
		return nil, fmt.Errorf("[Inference] ошибка сериализации запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("[Inference] ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[Inference] сервис недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("[Inference] неожиданный статус %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("[Inference] ошибка разбора ответа: %w", err)
	}
	if out.Probability == nil || *out.Probability < 0 || *out.Probability > 1 {
		return nil, fmt.Errorf("[Inference] некорректная вероятность в ответе")
	}

	return &model.Prediction{Probability: *out.Probability, Label: out.Label}, nil
}
