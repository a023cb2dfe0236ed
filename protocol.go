package main

import "strconv"

const (
	maxMethodLen   = 16
	maxURILen      = 512
	maxQueryPairs  = 32
	maxKeyLen      = 128
	maxValueLen    = 256
	requestBufSize = 8192
)

// QueryPair is a single decoded key/value from the query string.
type QueryPair struct {
	Key   string
	Value string
}

// Query keeps pairs in the order they appeared. Keys may repeat.
type Query []QueryPair

// Get returns the value of the first pair named key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Request is built once per connection from the request line.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Query    Query
}

var statusText = map[int]string{
	200: "OK",
	400: "Bad Request",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

func statusPhrase(code int) string {
	if s, ok := statusText[code]; ok {
		return s
	}
	return "Status " + strconv.Itoa(code)
}
