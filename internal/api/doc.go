// Package api provides the HTTP handlers for the assessment surface.
//
// The wire contract is deliberate about status codes: input validation
// failures are reported as HTTP 200 with an {"error": ...} body, while
// unexpected internal failures and artifact failures use HTTP 500 with a
// generic message. Diagnostic detail only ever goes to the structured log.
package api
