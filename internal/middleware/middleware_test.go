package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionEcho(t *testing.T) http.Handler {
	return Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, ok := FromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(rc.SessionID))
	}))
}

func TestSession(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		cookie     string
		wantID     string
		wantCookie bool
	}{
		{name: "header", header: "s-header", wantID: "s-header"},
		{name: "cookie", cookie: "s-cookie", wantID: "s-cookie"},
		{name: "header wins over cookie", header: "s-header", cookie: "s-cookie", wantID: "s-header"},
		{name: "new session", wantCookie: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tc.header != "" {
				req.Header.Set(SessionHeader, tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tc.cookie})
			}
			rr := httptest.NewRecorder()

			sessionEcho(t).ServeHTTP(rr, req)

			body := rr.Body.String()
			if tc.wantID != "" {
				assert.Equal(t, tc.wantID, body)
			} else {
				assert.NotEmpty(t, body)
			}
			assert.Equal(t, body, rr.Header().Get(SessionHeader))

			cookies := rr.Result().Cookies()
			if tc.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, SessionCookie, cookies[0].Name)
				assert.Equal(t, body, cookies[0].Value)
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}

func TestAdminToken(t *testing.T) {
	h := AdminToken("0123456789abcdef")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	testCases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "valid", token: "0123456789abcdef", wantStatus: http.StatusNoContent},
		{name: "wrong", token: "fedcba9876543210", wantStatus: http.StatusUnauthorized},
		{name: "missing", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/discounts", nil)
			if tc.token != "" {
				req.Header.Set(AdminTokenHeader, tc.token)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
