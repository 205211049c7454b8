package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sainaif/animalsys/internal/client/client"
)

type recordedCall struct {
	Method string
	Path   string
	Query  string
	Body   string
	Opts   *client.RequestOptions
}

// fakeRequester records every call and answers with a canned body.
type fakeRequester struct {
	mu    sync.Mutex
	calls []recordedCall

	body string
	err  error
}

func (f *fakeRequester) Do(_ context.Context, method, path string, opts *client.RequestOptions) (*client.Response, error) {
	c := recordedCall{Method: method, Path: path, Opts: opts}
	if opts != nil {
		c.Query = opts.Query.Encode()
		if opts.Body != nil {
			b, _ := json.Marshal(opts.Body)
			c.Body = string(b)
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	return &client.Response{StatusCode: 200, Body: []byte(f.body)}, nil
}

func (f *fakeRequester) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}
