package openrobot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openrobot/openrobot-go/internal/conv"
	"github.com/openrobot/openrobot-go/internal/transport"
)

// TextGeneration starts a text completion task for text.
func (c *Client) TextGeneration(ctx context.Context, text string, opts ...TextGenerationOption) (*TextGenerationResult, error) {
	if text == "" {
		return nil, fmt.Errorf("openrobot: text is required")
	}

	o := &textGenerationOptions{numReturn: 1}
	for _, opt := range opts {
		opt(o)
	}

	form := url.Values{
		"text":       []string{text},
		"num_return": []string{strconv.Itoa(o.numReturn)},
	}
	conv.SetOptional(form, "max_length", o.maxLength)

	var result TextGenerationResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodPost,
		Target: "/api/text-generation",
		Form:   form,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to generate text: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// TextGenerationGet fetches the state of a text generation task.
func (c *Client) TextGenerationGet(ctx context.Context, taskID string) (*TextGenerationResult, error) {
	if taskID == "" {
		return nil, fmt.Errorf("openrobot: task ID is required")
	}

	var result TextGenerationResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/text-generation/" + url.QueryEscape(taskID),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get text generation task: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// Sentiment starts a sentiment analysis task for text.
func (c *Client) Sentiment(ctx context.Context, text string) (*SentimentResult, error) {
	if text == "" {
		return nil, fmt.Errorf("openrobot: text is required")
	}

	var result SentimentResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodPost,
		Target: "/api/sentiment",
		Form:   url.Values{"text": []string{text}},
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze sentiment: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// SentimentGet fetches the state of a sentiment task.
func (c *Client) SentimentGet(ctx context.Context, taskID string) (*SentimentResult, error) {
	if taskID == "" {
		return nil, fmt.Errorf("openrobot: task ID is required")
	}

	var result SentimentResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/sentiment/" + url.QueryEscape(taskID),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get sentiment task: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// Summarization starts a summarization task for text.
func (c *Client) Summarization(ctx context.Context, text string, opts ...SummarizationOption) (*SummarizationResult, error) {
	if text == "" {
		return nil, fmt.Errorf("openrobot: text is required")
	}

	o := &summarizationOptions{minLength: 1}
	for _, opt := range opts {
		opt(o)
	}

	form := url.Values{
		"text":       []string{text},
		"min_length": []string{strconv.Itoa(o.minLength)},
	}
	conv.SetOptional(form, "max_length", o.maxLength)

	var result SummarizationResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodPost,
		Target: "/api/summarization",
		Form:   form,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize text: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// SummarizationGet fetches the state of a summarization task.
func (c *Client) SummarizationGet(ctx context.Context, taskID string) (*SummarizationResult, error) {
	if taskID == "" {
		return nil, fmt.Errorf("openrobot: task ID is required")
	}

	var result SummarizationResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/summarization/" + url.QueryEscape(taskID),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get summarization task: %w", err)
	}
	result.Raw = raw

	return &result, nil
}
