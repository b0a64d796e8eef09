// Package mailapi provides a client for the MailAPI transactional email and
// contact API.
//
// The client wraps [github.com/go-resty/resty/v2] and authenticates every
// request with a bearer API key.
//
// # Basic Usage
//
//	c, err := mailapi.New(os.Getenv("MAILAPI_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := c.Emails.Send(ctx, &mailapi.SendEmailRequest{
//	    From:    "Your App <hello@mailapi.dev>",
//	    To:      "user@example.com",
//	    Subject: "Welcome",
//	    Message: "Hello!",
//	})
//	if res.Error != nil {
//	    log.Fatalf("send failed: %s (%s)", res.Error.Message, res.Error.Code)
//	}
//	fmt.Println(res.Data.MessageID)
//
// # Results
//
// API calls do not return Go errors. Each returns a [Result] holding either
// Data or Error. Error.Code is the code reported by the API, or one of
// [CodeNetworkError] (no response received), [CodeInternalError] (the
// request could not be built or the response could not be decoded) and
// [CodeUnsupportedMethod]. Use [Result.Unwrap] to get a conventional
// (value, error) pair; the error then works with errors.Is against
// [ErrUnauthorized], [ErrRateLimited] and [ErrNetwork].
//
// A 2xx response is always a success. If its body does not fit the response
// type, Data holds what could be decoded and [Result].DecodeError explains the
// rest; Raw always has the full body.
//
// Requests are never retried. Cancel or bound a call through its context.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// resulting configuration is validated by [New].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. API error response bodies are logged at error level
// before they are turned into an [Error].
package mailapi
