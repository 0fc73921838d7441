package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestLoggerMiddlewareKeepsStatus(t *testing.T) {
	type tc struct {
		name           string
		path           string
		expectedStatus int
		expectWrapped  bool
	}

	tcs := []tc{
		{name: "logged page", path: "/photos", expectedStatus: http.StatusTeapot, expectWrapped: true},
		{name: "excluded path", path: "/ws", expectedStatus: http.StatusTeapot, expectWrapped: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := false

			handler := newRequestLoggerMiddleware([]string{"/ws"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, wrapped = w.(*statusRecorder)
				w.WriteHeader(http.StatusTeapot)
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d but got %d", tc.expectedStatus, w.Code)
			}

			if wrapped != tc.expectWrapped {
				t.Fatalf("expected wrapped %v but got %v", tc.expectWrapped, wrapped)
			}
		})
	}
}
