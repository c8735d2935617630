package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"quizterm/internal/question"
	"quizterm/internal/quiz"
)

// DefaultURL is the endpoint the quiz reads questions from.
const DefaultURL = "http://localhost:8000/questions"

// DefaultTimeout bounds the single fetch attempt.
const DefaultTimeout = 10 * time.Second

const maxBodyBytes = 4 << 20

// Fetch operations reported by FetchError.
const (
	OpRequest  = "request"
	OpStatus   = "status"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// FetchError reports a failed question fetch. There is no retry.
type FetchError struct {
	URL string
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch questions from %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches question sets over HTTP.
type Client struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewClient returns a client for url with the default timeout.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{URL: url, HTTPClient: http.DefaultClient, Timeout: DefaultTimeout}
}

// Fetch performs one GET of the question list and converts it for the quiz.
func (c *Client) Fetch(ctx context.Context) ([]quiz.Question, error) {
	set, err := c.FetchSet(ctx)
	if err != nil {
		return nil, err
	}
	return set.Quiz(), nil
}

// FetchSet performs one GET of the question list.
func (c *Client) FetchSet(ctx context.Context) (question.Set, error) {
	if ctx == nil {
		return question.Set{}, errors.New("source: context is nil")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return question.Set{}, &FetchError{URL: c.URL, Op: OpRequest, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return question.Set{}, &FetchError{URL: c.URL, Op: OpRequest, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return question.Set{}, &FetchError{URL: c.URL, Op: OpDecode, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return question.Set{}, &FetchError{URL: c.URL, Op: OpStatus, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	set, err := question.Decode(body, question.FormatJSON)
	if err != nil {
		op := OpDecode
		var validationErr *question.ValidationError
		if errors.As(err, &validationErr) {
			op = OpValidate
		}
		return question.Set{}, &FetchError{URL: c.URL, Op: op, Err: err}
	}
	return set, nil
}
