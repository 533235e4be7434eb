// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/TarunK190/Customer-Behaviour-Analysis/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	// Create test request and recorder
	req := httptest.NewRequest("GET", "/reports", nil)
	w := httptest.NewRecorder()

	// Execute
	wrappedHandler(w, req)

	// Verify handler was called
	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	// Verify response was written correctly
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Test that logging doesn't interfere with various response codes
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"NotFound", http.StatusNotFound, `{"error":"Not Found"}`},
		{"MethodNotAllowed", http.StatusMethodNotAllowed, "method not allowed"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("GET", "/reports/top-rated-items", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)

	if rec.status != http.StatusTeapot {
		t.Errorf("Expected recorded status 418, got %d", rec.status)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status to reach the client, got %d", w.Code)
	}
}

func TestWithRequestID(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/reports", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("Expected a UUID in the context, got %q", seen)
		}
		if w.Header().Get(RequestIDHeader) != seen {
			t.Errorf("Response header %q does not match context id %q", w.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("reuses a valid client id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest("GET", "/reports", nil)
		req.Header.Set(RequestIDHeader, id)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if seen != id || w.Header().Get(RequestIDHeader) != id {
			t.Errorf("Expected client id %q to be reused, got %q", id, seen)
		}
	})

	t.Run("replaces an invalid client id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if seen == "<script>" {
			t.Error("Invalid client id should not be propagated")
		}
		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("Expected a fresh UUID, got %q", seen)
		}
	})
}

func TestRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty id outside WithRequestID, got %q", id)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"status": "ok"},
			expected:   `{"status":"ok"}`,
		},
		{
			name:       "report rows",
			statusCode: http.StatusOK,
			data:       []models.GenderRevenue{{Gender: models.GenderMale, Revenue: 370}},
			expected:   `[{"gender":"Male","revenue":370}]`,
		},
		{
			name:       "error response",
			statusCode: http.StatusNotFound,
			data:       models.ErrorResponse{Error: "Not Found", Message: "unknown report"},
			expected:   `{"error":"Not Found","message":"unknown report"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			// Check status code
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			// Check Content-Type header
			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Check body (trim newline added by Encode)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{
			name:          "not found",
			statusCode:    http.StatusNotFound,
			message:       "unknown report",
			expectedError: "Not Found",
		},
		{
			name:          "service unavailable",
			statusCode:    http.StatusServiceUnavailable,
			message:       "customer_details not loaded",
			expectedError: "Service Unavailable",
		},
		{
			name:          "internal error",
			statusCode:    http.StatusInternalServerError,
			message:       "database error",
			expectedError: "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			// Check status code
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			// Check Content-Type
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			// Decode and verify error response
			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	// Create a simple handler that returns OK
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/reports", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		// Should return 200 OK without calling next handler
		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://dashboard.example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/reports", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("read-only methods", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/reports", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowed := w.Header().Get("Access-Control-Allow-Methods")
		if !strings.Contains(allowed, "GET") {
			t.Error("Expected GET in allowed methods")
		}
		for _, method := range []string{"POST", "PUT", "DELETE"} {
			if strings.Contains(allowed, method) {
				t.Errorf("%s should not be allowed on a read-only API", method)
			}
		}
		if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), RequestIDHeader) {
			t.Error("Expected the request id header to be exposed")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (comma separated)",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1, 172.16.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs (space after comma)",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "[::1]:12345",
			expectedIP: "[::1]", // Implementation strips port after last colon
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
		{
			name:       "empty X-Forwarded-For falls through to RemoteAddr",
			headers:    map[string]string{"X-Forwarded-For": ""},
			remoteAddr: "10.0.0.5:8080",
			expectedIP: "10.0.0.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			result := GetClientIP(req)

			if result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
