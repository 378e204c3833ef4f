package translate

// options holds configuration for a Translate call.
type options struct {
	fromLang string
}

// Option configures a Translate call.
type Option func(*options)

// WithFromLang sets the source language instead of letting the service detect it.
func WithFromLang(lang string) Option {
	return func(o *options) {
		o.fromLang = lang
	}
}
