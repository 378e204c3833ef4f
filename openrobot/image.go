package openrobot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openrobot/openrobot-go/internal/transport"
)

// uploadField is the multipart field the API reads image uploads from.
const uploadField = "upload_file"

// ImageSource is an image given either by URL or by its bytes.
type ImageSource struct {
	url  string
	data []byte
}

// ImageURL refers to an image the API fetches itself.
func ImageURL(u string) ImageSource {
	return ImageSource{url: u}
}

// ImageBytes uploads an in-memory image.
func ImageBytes(data []byte) ImageSource {
	return ImageSource{data: data}
}

// NSFWCheck scores the image at imageURL for unsafe content.
func (c *Client) NSFWCheck(ctx context.Context, imageURL string) (*NSFWCheckResult, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("openrobot: image URL is required")
	}

	var result NSFWCheckResult
	raw, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/nsfw-check",
		Query:  url.Values{"url": []string{imageURL}},
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to check image: %w", err)
	}
	result.Raw = raw

	return &result, nil
}

// Celebrity detects the celebrities in the image at imageURL.
func (c *Client) Celebrity(ctx context.Context, imageURL string) ([]CelebrityResult, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("openrobot: image URL is required")
	}

	var resp struct {
		DetectedFaces *[]json.RawMessage `json:"detectedFaces"`
	}
	_, err := c.call(ctx, &transport.Request{
		Method: http.MethodGet,
		Target: "/api/celebrity",
		Query:  url.Values{"url": []string{imageURL}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to detect celebrities: %w", err)
	}

	if resp.DetectedFaces == nil {
		return nil, fmt.Errorf("failed to detect celebrities: response has no detectedFaces")
	}

	faces := *resp.DetectedFaces
	results := make([]CelebrityResult, 0, len(faces))
	for _, face := range faces {
		var r CelebrityResult
		if err := json.Unmarshal(face, &r); err != nil {
			return nil, fmt.Errorf("failed to decode celebrity: %w", err)
		}
		r.Raw = face
		results = append(results, r)
	}

	return results, nil
}

// OCR reads the text in an image. URL sources are passed as a query
// parameter; byte sources are uploaded as multipart form data.
func (c *Client) OCR(ctx context.Context, source ImageSource) (*OCRResult, error) {
	req := &transport.Request{
		Method: http.MethodPost,
		Target: "/api/ocr",
	}

	switch {
	case source.url != "":
		req.Query = url.Values{"url": []string{source.url}}
	case len(source.data) > 0:
		req.File = &transport.File{Field: uploadField, Data: source.data}
	default:
		return nil, fmt.Errorf("openrobot: source must be an image URL or image bytes")
	}

	var result OCRResult
	raw, err := c.call(ctx, req, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	result.Raw = raw

	return &result, nil
}
