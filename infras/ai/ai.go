package ai

//go:generate go run go.uber.org/mock/mockgen -source=./ai.go -destination=./mocks/ai_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/otel"
	"nautica/shared/constant"
	"nautica/shared/failure"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	otelAttrModel = "model"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat completion endpoint. It only
// decorates replies with prose, so callers must always carry a fallback.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(config *config.Config, otl otel.Otel) Client {
	return &clientImpl{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.External.AI.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) Complete(ctx context.Context, messages []Message) (reply string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelAIScopeName, constant.OtelAIScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrModel, c.config.External.AI.Model)

	if c.config.External.AI.APIKey == "" {
		err = failure.ConfigError("ai api key is not configured")

		return "", err
	}

	payload, err := json.Marshal(completionRequest{
		Model:    c.config.External.AI.Model,
		Messages: messages,
	})
	if err != nil {
		return "", failure.UpstreamError("failed to encode completion request")
	}

	target := strings.TrimRight(c.config.External.AI.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return "", failure.UpstreamError("failed to build completion request")
	}

	req.Header.Set(constant.RequestHeaderContentType, "application/json")
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.config.External.AI.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Completion request failed")

		return "", failure.UpstreamError("ai provider is unreachable")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure.UpstreamError("failed to read completion response")
	}

	var decoded completionResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return "", failure.UpstreamError("failed to decode completion response")
	}

	if resp.StatusCode >= http.StatusBadRequest || decoded.Error != nil {
		message := fmt.Sprintf("ai provider returned status %d", resp.StatusCode)
		if decoded.Error != nil && decoded.Error.Message != "" {
			message = decoded.Error.Message
		}

		log.Error().Int("status", resp.StatusCode).Str("message", message).Msg("AI provider returned an error")

		return "", failure.UpstreamError(message)
	}

	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", failure.UpstreamError("ai provider returned an empty completion")
	}

	return decoded.Choices[0].Message.Content, nil
}
