package speech

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openrobot/openrobot-go/internal/transport"
)

const (
	speechToTextPath = "/api/speech/speech-to-text/"
	textToSpeechPath = "/api/speech/text-to-speech/"
	uploadField      = "upload_file"
)

// Client provides access to the OpenRobot speech services.
// It is safe for concurrent use.
type Client struct {
	transport *transport.Client
}

// NewClient creates a new Speech client.
// This is typically called internally by the root openrobot.Client.
func NewClient(t *transport.Client) *Client {
	return &Client{transport: t}
}

// SpeechToText transcribes audio with the named service.
func (c *Client) SpeechToText(ctx context.Context, service Service, source Source, opts ...SpeechToTextOption) (*SpeechToTextResult, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: speech service is required")
	}

	o := &speechToTextOptions{}
	for _, opt := range opts {
		opt(o)
	}

	req := &transport.Request{
		Method: http.MethodPost,
		Target: speechToTextPath + url.QueryEscape(string(service)),
		Query:  url.Values{},
	}

	switch {
	case source.url != "":
		req.Query.Set("url", source.url)
	case len(source.data) > 0:
		req.File = &transport.File{Field: uploadField, Filename: source.filename, Data: source.data}
	default:
		return nil, fmt.Errorf("openrobot: source must be an audio URL or audio bytes")
	}
	if o.sourceLanguage != "" {
		req.Query.Set("source_language", o.sourceLanguage)
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe audio: %w", err)
	}

	var result SpeechToTextResult
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}
	result.Raw = resp.Body

	return &result, nil
}

// TextToSpeech synthesizes text with the given voice of the named service.
func (c *Client) TextToSpeech(ctx context.Context, service Service, text, voiceID string, opts ...TextToSpeechOption) (*TextToSpeechResult, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: speech service is required")
	}
	if text == "" {
		return nil, fmt.Errorf("openrobot: text is required")
	}
	if voiceID == "" {
		return nil, fmt.Errorf("openrobot: voice ID is required")
	}

	o := &textToSpeechOptions{}
	for _, opt := range opts {
		opt(o)
	}

	query := url.Values{
		"text":     []string{text},
		"voice_id": []string{voiceID},
	}
	if o.engine != "" {
		query.Set("engine", o.engine)
	}

	resp, err := c.transport.Do(ctx, &transport.Request{
		Method: http.MethodPost,
		Target: textToSpeechPath + url.QueryEscape(string(service)),
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	var result TextToSpeechResult
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}
	result.Raw = resp.Body

	return &result, nil
}

// SupportedLanguages lists the languages the speech-to-text service understands.
func (c *Client) SupportedLanguages(ctx context.Context, service Service) ([]Language, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: speech service is required")
	}

	var resp struct {
		Languages []Language `json:"languages"`
	}
	if err := c.transport.Get(ctx, speechToTextPath+url.QueryEscape(string(service))+"/supports", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list speech-to-text languages: %w", err)
	}

	return resp.Languages, nil
}

// SupportedVoices lists the voices the text-to-speech service offers.
func (c *Client) SupportedVoices(ctx context.Context, service Service) ([]Voice, error) {
	if service == "" {
		return nil, fmt.Errorf("openrobot: speech service is required")
	}

	var resp struct {
		Voices []Voice `json:"voices"`
	}
	if err := c.transport.Get(ctx, textToSpeechPath+url.QueryEscape(string(service))+"/supports", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list text-to-speech voices: %w", err)
	}

	return resp.Voices, nil
}
