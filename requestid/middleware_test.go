package requestid

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/sample", nil)
	for _, v := range header {
		req.Header.Add("x-request-id", v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestMiddleware_GeneratesWhenMissing(t *testing.T) {
	var seen string
	h := Middleware(Config{UniqueValuePrefix: "TEST-"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, id, r.Header.Get(DefaultHeaderName))
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(t, h)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	got := rec.Header().Values(DefaultHeaderName)
	require.Len(t, got, 1)
	assert.Equal(t, seen, got[0])
	_, ok := ParseUUIDv4(got[0])
	assert.True(t, ok)
}

func TestMiddleware_AppendsToNonUnique(t *testing.T) {
	h := Middleware(Config{UniqueValuePrefix: "TEST-"})(http.HandlerFunc(noContent))

	rec := serve(t, h, "x-1,x-2,x3,x-4,x-5,x-6,x-7,x-8")

	tokens := Tokens(rec.Header().Get(DefaultHeaderName))
	require.Len(t, tokens, 9)
	assert.Equal(t, "x-1,x-2,x3,x-4,x-5,x-6,x-7,x-8", strings.Join(tokens[:8], ","))
	_, ok := ParseUUIDv4(tokens[8])
	assert.True(t, ok)
}

func TestMiddleware_PreservesUnique(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	tests := []struct {
		name   string
		prefix string
		value  string
	}{
		{name: "two uuids", value: a + "," + b},
		{name: "prefix only", prefix: "TEST-", value: "TEST-"},
		{name: "prefix then non unique", prefix: "TEST-", value: "TEST-X,client-non-unique-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Middleware(Config{UniqueValuePrefix: tt.prefix})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.value, r.Header.Get(DefaultHeaderName))
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := serve(t, h, tt.value)

			assert.Equal(t, []string{tt.value}, rec.Header().Values(DefaultHeaderName))
		})
	}
}

func TestMiddleware_EmptyHeaderIsPresent(t *testing.T) {
	h := Middleware(Config{})(http.HandlerFunc(noContent))

	rec := serve(t, h, "")

	value := rec.Header().Get(DefaultHeaderName)
	require.True(t, strings.HasPrefix(value, ","), "got %q", value)
	_, ok := ParseUUIDv4(strings.TrimPrefix(value, ","))
	assert.True(t, ok)
}

func TestMiddleware_JoinsRepeatedHeaders(t *testing.T) {
	id := uuid.NewString()
	h := Middleware(Config{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"first," + id}, r.Header.Values(DefaultHeaderName))
		assert.Equal(t, []string{"first", id}, IDs(r.Context()))
	}))

	rec := serve(t, h, "first", id)

	assert.Equal(t, "first,"+id, rec.Header().Get(DefaultHeaderName))
}

func TestMiddleware_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "header deleted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Del(DefaultHeaderName)
				w.WriteHeader(http.StatusBadGateway)
			},
			status: http.StatusBadGateway,
		},
		{
			name: "header overwritten before body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set(DefaultHeaderName, "other")
				_, _ = io.WriteString(w, "body")
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Middleware(Config{})(tt.handler)

			rec := serve(t, h, "client-value")

			assert.Equal(t, tt.status, rec.Code)
			got := rec.Header().Values(DefaultHeaderName)
			require.Len(t, got, 1)
			assert.True(t, strings.HasPrefix(got[0], "client-value,"), "got %q", got[0])
		})
	}
}

func TestMiddleware_PanicRecoveredOutside(t *testing.T) {
	recoverer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
	h := recoverer(Middleware(Config{UniqueValuePrefix: "TEST-"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del(DefaultHeaderName)
		panic("handler failed")
	})))

	rec := serve(t, h, "TEST-1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "TEST-1", rec.Header().Get(DefaultHeaderName))
}

func TestMiddleware_CustomHeaderName(t *testing.T) {
	h := Middleware(Config{HeaderName: "x-correlation-id"})(http.HandlerFunc(noContent))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-Id", "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, strings.HasPrefix(rec.Header().Get("X-Correlation-ID"), "abc,"))
	assert.Empty(t, rec.Header().Get(DefaultHeaderName))
}

func TestMiddleware_Observer(t *testing.T) {
	var outcomes []Outcome
	h := Middleware(Config{UniqueValuePrefix: "TEST-"}, WithObserver(func(r *http.Request, res Result) {
		value, _ := FromContext(r.Context())
		assert.Equal(t, res.Value, value)
		outcomes = append(outcomes, res.Outcome)
	}))(http.HandlerFunc(noContent))

	serve(t, h)
	serve(t, h, "TEST-1")
	serve(t, h, "plain")

	assert.Equal(t, []Outcome{Generated, Preserved, Appended}, outcomes)
}

func TestMiddleware_Flush(t *testing.T) {
	h := Middleware(Config{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del(DefaultHeaderName)
		w.(http.Flusher).Flush()
	}))

	rec := serve(t, h)

	assert.True(t, rec.Flushed)
	assert.NotEmpty(t, rec.Header().Get(DefaultHeaderName))
}

func TestMiddleware_OverHTTP(t *testing.T) {
	server := httptest.NewServer(Middleware(Config{UniqueValuePrefix: "TEST-"})(http.HandlerFunc(noContent)))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/sample", nil)
	require.NoError(t, err)
	req.Header.Set("x-request-id", "client-non-unique-value")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	tokens := Tokens(resp.Header.Get("X-Request-ID"))
	require.Len(t, tokens, 2)
	assert.Equal(t, "client-non-unique-value", tokens[0])
	_, ok := ParseUUIDv4(tokens[1])
	assert.True(t, ok)
}

func TestFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := FromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, IDs(req.Context()))
}

func TestConfigHeader(t *testing.T) {
	assert.Equal(t, "X-Request-Id", Config{}.Header())
	assert.Equal(t, "X-Trace-Token", Config{HeaderName: "x-trace-token"}.Header())
}
