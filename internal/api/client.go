package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/ctxmeta"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "rms/api"

// envelope — соглашение REST-ответов: {success, data, message, errors}.
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Client — базовый HTTP-клиент REST API.
// Собственной логики у него нет: кодирование payload, конверт ответа,
// нормализация ошибок и телеметрия. Повторов не делает.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// NewClient — конструктор; timeout <= 0 означает дефолтные 10s.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// do — выполняет запрос и раскладывает конверт ответа в out (если out != nil).
// Все ошибки возвращаются вызывающему; паники и ретраи исключены.
func (c *Client) do(ctx context.Context, entity, op, method, path string, p ports.Payload, out any) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, entity+"."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("rms.entity", entity),
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	err := c.roundTrip(ctx, method, path, p, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.APIRequests.WithLabelValues(entity, op, "error").Inc()
		c.log.Warnf(ctx, "api %s %s failed: %v", method, path, err)
		return err
	}

	metrics.APIRequests.WithLabelValues(entity, op, "ok").Inc()
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, p ports.Payload, out any) error {
	var (
		req *http.Request
		err error
	)

	if p != nil {
		body, contentType, encErr := p.Encode()
		if encErr != nil {
			return encErr
		}
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err == nil {
			req.Header.Set("Content-Type", contentType)
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	}
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// X-Request-ID: берём из контекста (если шлюз уже назначил) или генерируем.
	requestID, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		// Транспортная ошибка: ответа сервера нет (обрыв, таймаут).
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= http.StatusBadRequest || (decodeErr == nil && !env.Success) {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.Fields = env.Errors
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}
