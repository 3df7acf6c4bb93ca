package rhttp

import (
	"io"
	"net/http"
)

// ToStd converts a dispatcher into a standard library http.Handler so any
// host server primitive can serve it. The implementation writes the response
// value the dispatch resolved to: headers first, then the status code, then
// the streamed body. A body implementing io.ReadCloser is closed on every
// exit path, including failed writes, so file-backed static responses release
// their filesystem resource whether or not the client consumed them.
func ToStd(d *Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, d.Dispatch(r.Context(), r), d.logs)
	})
}

func writeResponse(w http.ResponseWriter, resp *Response, logs Logger) {
	if closer, ok := resp.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}

	for key, vals := range resp.Header {
		for _, val := range vals {
			w.Header().Add(key, val)
		}
	}

	w.WriteHeader(resp.Status)

	if resp.Body == nil {
		return
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		logs.LogResponseWriteError(err)
	}
}
