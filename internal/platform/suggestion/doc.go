// Package suggestion fetches short placeholder text from an external content
// endpoint. The task service uses it to fill in descriptions that were left
// blank.
//
// The endpoint is expected to return a JSON object with a string "body" field.
// Every failure (timeout, transport error, non-2xx status, undecodable or empty
// body) degrades to FallbackSuggestion so that task creation never fails
// because of this dependency. Calls are made once with a bounded timeout and
// are never retried.
package suggestion
