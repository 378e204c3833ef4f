// ABOUTME: Package openrobot provides a Go SDK for the OpenRobot API.
// ABOUTME: This is the main package containing the Client and the endpoint methods.

// Package openrobot provides a Go SDK for the OpenRobot API, a hosted
// machine-learning service for text generation, sentiment analysis,
// summarization, lyrics lookup, NSFW checks, celebrity detection, OCR,
// translation and speech.
//
// # Quick Start
//
//	client, err := openrobot.NewClient(openrobot.WithToken("my-token"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Sentiment(ctx, "I love this library")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Result[0].Label)
//
// # Credentials
//
// Without WithToken the client resolves a token through the
// credential package: the OPENROBOT_API_TOKEN environment variable, then
// a .env file in the working directory, then the token key of
// $XDG_CONFIG_HOME/openrobot/config.toml (~/.config by default). Use
// WithCredentialResolver to replace that chain. NewClient returns ErrNoCredential when nothing is found.
//
// TestingToken is a shared token limited to 5 requests per day. Using it
// logs a warning unless WithIgnoreWarning is set.
//
// # Rate Limits
//
// A 429 response is retried after the delay in its Retry-After header,
// up to WithTries requests per call (5 by default, Unbounded for no
// limit). WithHandleRateLimit(false) returns the 429 as an error instead.
// The wait honours context cancellation.
//
// # Error Handling
//
//	if openrobot.IsForbidden(err) {
//	    // 403: token rejected or out of quota
//	}
//	if openrobot.IsTooManyRequests(err) {
//	    // 429 not overcome
//	}
//	if errors.Is(err, openrobot.ErrMissingRetryAfter) {
//	    // 429 without a usable Retry-After
//	}
//
// # Thread Safety
//
// The Client is safe for concurrent use after construction.
package openrobot
