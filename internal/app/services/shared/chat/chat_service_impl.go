package chat

import (
	"bytes"
	"context"
	"fmt"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	chatServiceInstance contracts.ChatService
	onceChatService     sync.Once
)

type chatService struct {
	BaseUrl    string
	APIKey     string
	Model      string
	MaxRetries int
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type upstreamRequest struct {
	Model    string                  `json:"model"`
	Messages []requests.ChatMessage  `json:"messages"`
}

type upstreamResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewChatService(chatConfig config.Chat, logger *zap.Logger) contracts.ChatService {
	onceChatService.Do(func() {
		perSecond := rate.Limit(float64(chatConfig.RequestsPerMinute) / 60.0)
		chatServiceInstance = &chatService{
			BaseUrl:    chatConfig.BaseUrl,
			APIKey:     chatConfig.APIKey,
			Model:      chatConfig.Model,
			MaxRetries: chatConfig.MaxRetries,
			HTTPClient: &http.Client{
				Timeout: time.Duration(chatConfig.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(perSecond, chatConfig.RequestsPerMinute),
			Log:     logger,
		}
	})
	return chatServiceInstance
}

func (c *chatService) CreateCompletion(ctx context.Context, request *requests.ChatCompletion) (*responses.ChatCompletion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrChatRateLimited(err)
	}

	requestJSON, err := json.Marshal(&upstreamRequest{
		Model:    c.Model,
		Messages: request.Messages,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			c.Log.Warn("chatService.CreateCompletion retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, exceptions.ErrSendHTTPRequest(ctx.Err())
			case <-time.After(backoff):
			}
		}

		response, retryable, err := c.doRequest(ctx, requestID, requestJSON)
		if err == nil {
			return response, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (c *chatService) doRequest(ctx context.Context, requestID string, requestJSON []byte) (*responses.ChatCompletion, bool, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, false, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, true, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.Log.Error("chatService.doRequest upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.ByteString("body", bodyBytes),
		)
		retryable := resp.StatusCode == constvars.StatusTooManyRequests || resp.StatusCode >= constvars.StatusInternalServerError
		return nil, retryable, exceptions.ErrChatUpstream(fmt.Errorf("upstream status %d", resp.StatusCode))
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, false, exceptions.ErrCannotParseJSON(err)
	}
	if len(upstream.Choices) == 0 {
		return nil, false, exceptions.ErrChatUpstream(fmt.Errorf("upstream returned no choices"))
	}

	return &responses.ChatCompletion{
		Reply: upstream.Choices[0].Message.Content,
		Model: upstream.Model,
	}, false, nil
}
