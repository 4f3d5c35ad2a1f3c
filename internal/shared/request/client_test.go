package request_test

import (
	"testing"

	"go-inspecta/internal/shared/request"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientType(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		userAgent string
		want      request.ClientType
	}{
		{"header wins", "WEB", "okhttp/4.9", request.ClientWeb},
		{"mobile header", "android", "", request.ClientMobile},
		{"browser agent", "", "Mozilla/5.0 (X11; Linux x86_64)", request.ClientWeb},
		{"flutter agent", "", "Dart/3.1 (dart:io)", request.ClientMobile},
		{"no hints", "", "", request.ClientAPI},
		{"curl", "", "curl/8.4.0", request.ClientAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.ResolveClientType(tt.header, tt.userAgent))
		})
	}
}

func TestIsWebClient(t *testing.T) {
	assert.True(t, request.IsWebClient(request.ClientWeb))
	assert.False(t, request.IsWebClient(request.ClientMobile))
}
