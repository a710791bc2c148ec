package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mlevkov/authbox/internal/logging"
)

// HTTPClient talks to the authentication service over REST. All endpoints
// share one configured base URL; there is no per-call retry.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// apiResponse is the body shape shared by every endpoint: login returns a
// token, everything else a message. Error bodies reuse the message field.
type apiResponse struct {
	Token   string            `json:"token"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) Outcome {
	status, resp, err := c.post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return transportFailure()
	}

	switch {
	case status/100 == 2:
		return Outcome{Kind: KindSuccess, Token: resp.Token, Message: resp.Message}
	case status == http.StatusUnauthorized:
		return Outcome{Kind: KindInvalidCredentials, Message: messageOr(resp, "invalid email or password")}
	case status == http.StatusForbidden:
		return Outcome{Kind: KindForbidden, Message: messageOr(resp, "unverified account")}
	default:
		return serverFailure(resp)
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) Outcome {
	status, resp, err := c.post(ctx, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return transportFailure()
	}

	switch {
	case status/100 == 2:
		return Outcome{Kind: KindSuccess, Message: resp.Message}
	case status == http.StatusForbidden:
		return Outcome{Kind: KindForbidden, Message: messageOr(resp, "unverified account")}
	case status == http.StatusConflict:
		return Outcome{Kind: KindConflict, Message: messageOr(resp, "account already registered and verified")}
	default:
		return serverFailure(resp)
	}
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) Outcome {
	status, resp, err := c.post(ctx, "/auth/verify-otp", map[string]string{
		"email": email,
		"otp":   code,
	})
	if err != nil {
		return transportFailure()
	}

	switch {
	case status/100 == 2:
		return Outcome{Kind: KindSuccess, Message: resp.Message}
	case status == http.StatusBadRequest:
		return Outcome{Kind: KindInvalidInput, Message: messageOr(resp, "invalid code"), Fields: resp.Errors}
	default:
		return serverFailure(resp)
	}
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string) Outcome {
	status, resp, err := c.post(ctx, "/auth/resend-verify-token", map[string]string{
		"email": email,
	})
	if err != nil {
		return transportFailure()
	}

	if status/100 == 2 {
		return Outcome{Kind: KindSuccess, Message: resp.Message}
	}
	return serverFailure(resp)
}

func (c *HTTPClient) SendResetOTP(ctx context.Context, email string) Outcome {
	status, resp, err := c.post(ctx, "/auth/send-reset-otp", map[string]string{
		"email": email,
	})
	if err != nil {
		return transportFailure()
	}

	switch {
	case status/100 == 2:
		return Outcome{Kind: KindSuccess, Message: resp.Message}
	case status == http.StatusForbidden:
		return Outcome{Kind: KindForbidden, Message: messageOr(resp, "email not registered")}
	default:
		return serverFailure(resp)
	}
}

func (c *HTTPClient) ResetPassword(ctx context.Context, otp, newPassword string) Outcome {
	status, resp, err := c.post(ctx, "/auth/reset-password/"+url.PathEscape(otp), map[string]string{
		"newPassword": newPassword,
	})
	if err != nil {
		return transportFailure()
	}

	if status/100 == 2 {
		return Outcome{Kind: KindSuccess, Message: resp.Message}
	}
	return serverFailure(resp)
}

// post performs one JSON round trip. It returns the status code and the
// decoded body for any HTTP response, 2xx or not; err is non-nil only when
// no response arrived at all. Undecodable bodies are treated as empty.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (int, apiResponse, error) {
	requestID := uuid.NewString()

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, apiResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, apiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(ctx, "auth request", "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "auth request failed", "path", path, "request_id", requestID, "error", err)
		return 0, apiResponse{}, err
	}
	defer resp.Body.Close()

	var parsed apiResponse
	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, &parsed)
	}

	c.log.Debug(ctx, "auth response", "path", path, "request_id", requestID, "status", resp.StatusCode)
	return resp.StatusCode, parsed, nil
}

func messageOr(resp apiResponse, fallback string) string {
	if resp.Message != "" {
		return resp.Message
	}
	return fallback
}

func serverFailure(resp apiResponse) Outcome {
	return Outcome{Kind: KindServerError, Message: resp.Message}
}

func transportFailure() Outcome {
	return Outcome{Kind: KindServerError}
}
