package openrobot

import "encoding/json"

// Every result keeps the decoded document in Raw so fields the SDK does
// not map are still reachable.

// TextGenerationResult is a text generation task.
type TextGenerationResult struct {
	TaskID    string   `json:"task_id"`
	Status    string   `json:"status"`
	Text      string   `json:"text"`
	MaxLength *int     `json:"max_length"`
	NumReturn int      `json:"num_return"`
	Result    []string `json:"result"`

	Raw json.RawMessage `json:"-"`
}

// SentimentLabel is one scored sentiment class.
type SentimentLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentResult is a sentiment analysis task.
type SentimentResult struct {
	TaskID string           `json:"task_id"`
	Status string           `json:"status"`
	Text   string           `json:"text"`
	Result []SentimentLabel `json:"result"`

	Raw json.RawMessage `json:"-"`
}

// SummarizationResult is a summarization task.
type SummarizationResult struct {
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
	Text      string `json:"text"`
	MaxLength *int   `json:"max_length"`
	MinLength int    `json:"min_length"`
	Result    string `json:"result"`

	Raw json.RawMessage `json:"-"`
}

// LyricImages holds artwork URLs for a track.
type LyricImages struct {
	Track      string `json:"track"`
	Background string `json:"background"`
}

// LyricResult is a lyrics lookup.
type LyricResult struct {
	Title  string      `json:"title"`
	Artist string      `json:"artist"`
	Lyrics string      `json:"lyrics"`
	Images LyricImages `json:"images"`
	Source string      `json:"source"`

	Raw json.RawMessage `json:"-"`
}

// NSFWLabel is a moderation label detected in an image.
type NSFWLabel struct {
	Name       string  `json:"Name"`
	ParentName string  `json:"ParentName"`
	Confidence float64 `json:"Confidence"`
}

// NSFWCheckResult is the moderation verdict for an image.
type NSFWCheckResult struct {
	Score  float64     `json:"nsfw_score"`
	Labels []NSFWLabel `json:"labels"`

	Raw json.RawMessage `json:"-"`
}

// BoundingBox locates a face as ratios of the image size.
type BoundingBox struct {
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
}

// Face is the detected face a celebrity match refers to.
type Face struct {
	BoundingBox BoundingBox `json:"BoundingBox"`
	Confidence  float64     `json:"Confidence"`
}

// CelebrityResult is one recognised celebrity.
type CelebrityResult struct {
	Name            string   `json:"Name"`
	ID              string   `json:"Id"`
	URLs            []string `json:"Urls"`
	MatchConfidence float64  `json:"MatchConfidence"`
	Face            Face     `json:"Face"`

	Raw json.RawMessage `json:"-"`
}

// OCRResult is the text read from an image.
type OCRResult struct {
	Text string `json:"text"`

	Raw json.RawMessage `json:"-"`
}
