package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newIPTestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded chain uses first hop",
			remoteAddr: "10.0.0.1:4321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded beats real ip",
			remoteAddr: "10.0.0.1:4321",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7",
				"X-Real-IP":       "198.51.100.9",
			},
			want: "203.0.113.7",
		},
		{
			name:       "real ip when no forwarded header",
			remoteAddr: "10.0.0.1:4321",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			want:       "198.51.100.9",
		},
		{
			name:       "remote addr strips port",
			remoteAddr: "192.0.2.4:5678",
			want:       "192.0.2.4",
		},
		{
			name:       "remote addr without port kept as is",
			remoteAddr: "192.0.2.4",
			want:       "192.0.2.4",
		},
	}
	for _, tc := range cases {
		c := newIPTestContext(tc.remoteAddr, tc.headers)
		if got := getClientIP(c); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
