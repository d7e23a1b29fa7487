package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// echoHandler echoes the request back, with a few switches for exercising
// error paths.
func (s *server) echoHandler(w http.ResponseWriter, r *http.Request) {
	currentCount := s.requestCounter.Add(1)

	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxBodySize))
		if err != nil {
			http.Error(w, "Error reading body: "+err.Error(), http.StatusBadRequest)
			return
		}
		body = b
	}

	if processTestingFeatures(w, r) {
		return
	}

	w.Header().Set("X-Echo-Request-Count", strconv.FormatUint(currentCount, 10))

	var responseBody []byte
	if r.Method == http.MethodGet && len(body) == 0 {
		responseBody = []byte(echoRequestInfo(r))
		w.Header().Set("Content-Type", "text/plain")
	} else {
		responseBody = body
		setResponseContentType(w, r)
	}

	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}

// processTestingFeatures handles X-Echo-Status and X-Echo-Error. It reports
// whether a response was written.
func processTestingFeatures(w http.ResponseWriter, r *http.Request) bool {
	if statusStr := strings.TrimSpace(r.Header.Get("X-Echo-Status")); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil && status >= 200 && status <= 599 {
			w.Header().Set("X-Echo-Status-Forced", "true")
			w.WriteHeader(status)
			return true
		}
	}

	switch strings.ToLower(strings.TrimSpace(r.Header.Get("X-Echo-Error"))) {
	case "":
		return false
	case "500", "internal":
		http.Error(w, "Simulated internal server error", http.StatusInternalServerError)
	case "502", "bad-gateway":
		http.Error(w, "Simulated bad gateway", http.StatusBadGateway)
	case "503", "unavailable":
		http.Error(w, "Simulated service unavailable", http.StatusServiceUnavailable)
	case "504", "gateway-timeout":
		http.Error(w, "Simulated gateway timeout", http.StatusGatewayTimeout)
	case "429", "rate-limit":
		w.Header().Set("Retry-After", "60")
		http.Error(w, "Simulated rate limit exceeded", http.StatusTooManyRequests)
	case "panic":
		panic("simulated handler panic")
	default:
		return false
	}
	return true
}

// Set appropriate content type for response
func setResponseContentType(w http.ResponseWriter, r *http.Request) {
	if contentType := r.Header.Get("X-Echo-Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
		return
	}
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
}

// Echo request information for GET requests without body
func echoRequestInfo(r *http.Request) string {
	var response strings.Builder
	fmt.Fprintf(&response, "%s %s %s\n", r.Method, r.RequestURI, r.Proto)
	fmt.Fprintf(&response, "Host: %s\n", r.Host)
	headerNames := make([]string, 0, len(r.Header))
	for name := range r.Header {
		headerNames = append(headerNames, name)
	}
	sort.Strings(headerNames)
	for _, name := range headerNames {
		for _, value := range r.Header[name] {
			fmt.Fprintf(&response, "%s: %s\n", name, value)
		}
	}
	fmt.Fprintf(&response, "\nClient-IP: %s\n", getClientIP(r))
	fmt.Fprintf(&response, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	return response.String()
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
