package translate

import "encoding/json"

// Service names a translation backend.
type Service string

// Translation backends offered by the API.
const (
	ServiceGoogle    Service = "google"
	ServiceLibre     Service = "libre"
	ServiceMicrosoft Service = "microsoft"
)

// Result is a completed translation.
type Result struct {
	Text           string `json:"text"`
	TranslatedText string `json:"translated_text"`
	FromLang       string `json:"from_lang"`
	ToLang         string `json:"to_lang"`

	Raw json.RawMessage `json:"-"`
}

// Language is a language a service supports.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
