package bing

import (
	"encoding/json"
	"errors"
	gohttp "net/http"
)

var errNotJSON = errors.New("result body is not json")

// Result is what the service sent back for a single call. Body is set only
// when Raw parsed as JSON (a literal null leaves it nil); Raw always holds
// the bytes as received.
type Result struct {
	StatusCode int
	Status     string
	Header     gohttp.Header

	Body any
	Raw  []byte

	parsed bool
}

// JSON reports whether the body parsed as JSON.
func (r *Result) JSON() bool {
	return r != nil && r.parsed
}

// Decode unmarshals the raw body into v, e.g. a *WebResponse.
func (r *Result) Decode(v any) error {
	if !r.JSON() {
		return errNotJSON
	}
	return json.Unmarshal(r.Raw, v)
}
