package cusp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

// TokenSource supplies the bearer credential attached to every call. The
// session store implements it; tests use StaticToken.
type TokenSource interface {
	Token() string
}

type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client is the single authenticated-client abstraction over the CUSP REST
// backend. Every resource controller receives the same instance; no call site
// reads the token from anywhere else. Requests carry no retry policy and no
// timeout beyond the transport default.
type Client struct {
	baseURL   string
	assetBase string
	http      *http.Client
	tokens    TokenSource
}

func New(baseURL, assetBase string, tokens TokenSource) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		assetBase: strings.TrimRight(assetBase, "/"),
		http:      &http.Client{},
		tokens:    tokens,
	}
}

// AssetURL resolves a backend-relative image/file reference against the asset
// host. Absolute references pass through untouched.
func (c *Client) AssetURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return c.assetBase + "/" + strings.TrimLeft(ref, "/")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// getJSON decodes a single-object response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.roundTrip(ctx, http.MethodGet, path, "", nil, KindFetch)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeError(json.Unmarshal(raw, out), KindFetch)
}

// getList decodes a collection response, normalizing both shapes CUSP
// endpoints are known to return: a bare array, or an envelope carrying the
// array under results/data/items.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	raw, err := c.roundTrip(ctx, http.MethodGet, path, "", nil, KindFetch)
	if err != nil {
		return err
	}
	return decodeError(decodeList(raw, out), KindFetch)
}

// decodeError classifies a payload-decode failure as an upstream fault, the
// same way a transport failure is reported. Status stays 0: the response
// itself was 2xx, only its body was unusable.
func decodeError(err error, kind ErrorKind) error {
	if err == nil {
		return nil
	}
	return APIError{Kind: kind, Status: 0, Message: "decode response: " + err.Error()}
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return WrapError(err, "encode payload")
	}
	raw, err := c.roundTrip(ctx, method, path, "application/json", bytes.NewReader(encoded), KindMutation)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeError(json.Unmarshal(raw, out), KindMutation)
}

// sendForm submits a multipart form; used wherever a binary attachment field
// is part of the payload. Nil attachments are skipped (field removed).
func (c *Client) sendForm(ctx context.Context, method, path string, fields map[string]string, attachments []*upload.Attachment, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return WrapError(err, "encode form field")
		}
	}
	for _, attachment := range attachments {
		if attachment == nil {
			continue
		}
		part, err := writer.CreateFormFile(attachment.Field, attachment.Filename)
		if err != nil {
			return WrapError(err, "encode form file")
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return WrapError(err, "encode form file")
		}
	}
	if err := writer.Close(); err != nil {
		return WrapError(err, "encode form")
	}
	raw, err := c.roundTrip(ctx, method, path, writer.FormDataContentType(), &buf, KindMutation)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeError(json.Unmarshal(raw, out), KindMutation)
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	_, err := c.roundTrip(ctx, http.MethodDelete, path, "", nil, KindMutation)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, contentType string, body io.Reader, kind ErrorKind) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, APIError{Kind: kind, Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, APIError{Kind: kind, Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			kind = KindAuth
		}
		return nil, APIError{Kind: kind, Status: resp.StatusCode, Message: responseMessage(raw, method, path)}
	}
	return raw, nil
}

func responseMessage(raw []byte, method, path string) string {
	parsed := struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Msg != "" {
			return parsed.Msg
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return "request failed: " + method + " " + path
}

func decodeList(raw []byte, out any) error {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return err
	}
	for _, key := range []string{"results", "data", "items"} {
		if inner, ok := envelope[key]; ok {
			return json.Unmarshal(inner, out)
		}
	}
	return errors.New("list payload carries no collection")
}

// Count fetches a list endpoint and reports its length without committing to
// a record shape; the dashboard summary uses it so counting and consuming
// agree on the envelope handling.
func (c *Client) Count(ctx context.Context, path string) (int, error) {
	raw, err := c.roundTrip(ctx, http.MethodGet, path, "", nil, KindFetch)
	if err != nil {
		return 0, err
	}
	n, err := ListLength(raw)
	return n, decodeError(err, KindFetch)
}

// ListLength counts a collection payload in either list shape.
func ListLength(raw []byte) (int, error) {
	var rows []json.RawMessage
	if err := decodeList(raw, &rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
