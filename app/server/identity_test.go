package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderIdentity_UserID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		user   string
		ok     bool
	}{
		{name: "user present", header: "X-Forwarded-User", value: "user_1", user: "user_1", ok: true},
		{name: "trimmed", header: "X-Forwarded-User", value: "  user_2 ", user: "user_2", ok: true},
		{name: "blank", header: "X-Forwarded-User", value: "   "},
		{name: "missing", header: "X-Forwarded-User"},
		{name: "not configured", header: "", value: "user_1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.value != "" {
				req.Header.Set("X-Forwarded-User", tc.value)
			}
			user, ok := (&HeaderIdentity{Header: tc.header}).UserID(req)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.user, user)
		})
	}
}
