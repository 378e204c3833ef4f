package speech

// speechToTextOptions holds configuration for a SpeechToText call.
type speechToTextOptions struct {
	sourceLanguage string
}

// SpeechToTextOption configures a SpeechToText call.
type SpeechToTextOption func(*speechToTextOptions)

// WithSourceLanguage sets the spoken language instead of letting the service detect it.
func WithSourceLanguage(lang string) SpeechToTextOption {
	return func(o *speechToTextOptions) {
		o.sourceLanguage = lang
	}
}

// textToSpeechOptions holds configuration for a TextToSpeech call.
type textToSpeechOptions struct {
	engine string
}

// TextToSpeechOption configures a TextToSpeech call.
type TextToSpeechOption func(*textToSpeechOptions)

// WithEngine selects the synthesis engine, e.g. "standard" or "neural".
func WithEngine(engine string) TextToSpeechOption {
	return func(o *textToSpeechOptions) {
		o.engine = engine
	}
}
