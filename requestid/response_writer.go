package requestid

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
)

// responseWriter re-asserts the request ID header when the response headers
// are sent, so a handler cannot drop or change it.
type responseWriter struct {
	http.ResponseWriter
	header  string
	value   string
	written bool
}

func (rw *responseWriter) stamp() {
	rw.ResponseWriter.Header().Set(rw.header, rw.value)
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.stamp()
		// 1xx responses are followed by the final header block.
		if code >= http.StatusOK {
			rw.written = true
		}
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	if !rw.written {
		rw.stamp()
		rw.written = true
	}
	return rw.ResponseWriter.Write(p)
}

func (rw *responseWriter) Flush() {
	if !rw.written {
		rw.stamp()
		rw.written = true
	}
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("response does not implement http.Hijacker")
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
