package speech

import "encoding/json"

// Service names a speech backend.
type Service string

// Speech backends offered by the API.
const (
	ServiceAzure    Service = "azure"
	ServicePolly    Service = "polly"
	ServiceDeepgram Service = "deepgram"
)

// Source is audio given either by URL or by its bytes.
type Source struct {
	url      string
	data     []byte
	filename string
}

// AudioURL refers to audio the API fetches itself.
func AudioURL(u string) Source {
	return Source{url: u}
}

// AudioBytes uploads in-memory audio. The filename hints the format to the
// service and may be empty.
func AudioBytes(data []byte, filename string) Source {
	return Source{data: data, filename: filename}
}

// SpeechToTextResult is a transcription.
type SpeechToTextResult struct {
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`

	Raw json.RawMessage `json:"-"`
}

// TextToSpeechResult points at the synthesized audio.
type TextToSpeechResult struct {
	URL string `json:"url"`

	Raw json.RawMessage `json:"-"`
}

// Language is a language a speech-to-text service understands.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Voice is a text-to-speech voice.
type Voice struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Gender       string   `json:"gender"`
	LanguageCode string   `json:"language_code"`
	Engines      []string `json:"supported_engines"`
}
