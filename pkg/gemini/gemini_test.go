package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestNewTextRequest(t *testing.T) {
	b, err := json.Marshal(NewTextRequest(DefaultPrompt))
	if err != nil {
		t.Fatal(err)
	}

	var got, want any

	_ = json.Unmarshal(b, &got)
	_ = json.Unmarshal(
		[]byte(`{"contents": [{"parts": [{"text": "Write a short greeting."}]}]}`),
		&want,
	)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewTextRequest() JSON = %s", b)
	}
}

func TestEndpoint_URL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		key      string
		want     string
		wantErr  bool
	}{
		{
			name:     "default endpoint",
			endpoint: Endpoint{BaseURL: DefaultBaseURL, Model: DefaultModel},
			key:      "AIzaSyA-abc_123",
			want:     "https://generativelanguage.googleapis.com/v1/models/gemini-pro:generateContent?key=AIzaSyA-abc_123",
		},
		{
			name:     "empty key",
			endpoint: Endpoint{BaseURL: DefaultBaseURL, Model: DefaultModel},
			key:      "",
			want:     "https://generativelanguage.googleapis.com/v1/models/gemini-pro:generateContent?key=",
		},
		{
			name:     "trailing slash on base",
			endpoint: Endpoint{BaseURL: "http://localhost:8080/v1/models/", Model: "gemini-1.5-pro"},
			key:      "k",
			want:     "http://localhost:8080/v1/models/gemini-1.5-pro:generateContent?key=k",
		},
		{
			name:     "unparsable base",
			endpoint: Endpoint{BaseURL: "http://[::1", Model: DefaultModel},
			key:      "k",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				got, err := tt.endpoint.URL(tt.key)
				if (err != nil) != tt.wantErr {
					t.Fatalf("URL() error = %v, wantErr %v", err, tt.wantErr)
				}
				if tt.wantErr {
					return
				}
				if got.String() != tt.want {
					t.Errorf("URL() got = %s, want %s", got, tt.want)
				}
			},
		)
	}
}

// redirect sends every request to `target`, keeping the path and query.
type redirect struct {
	target *url.URL
}

func (r redirect) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	req.Host = r.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newSDKTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)

	c, err := NewClient(
		context.Background(),
		"test-key",
		DefaultModel,
		&http.Client{Transport: redirect{target: u}},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}

	return c
}

func TestClient_Generate(t *testing.T) {
	var gotPath string

	c := newSDKTestClient(
		t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(
				[]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello there!"}]}}]}`),
			)
		},
	)

	got, err := c.Generate(context.Background(), DefaultPrompt)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Hello there!" {
		t.Errorf("Generate() got = %q, want %q", got, "Hello there!")
	}
	if !strings.Contains(gotPath, DefaultModel+":generateContent") {
		t.Errorf("request path = %s", gotPath)
	}
}

func TestClient_GenerateAPIError(t *testing.T) {
	c := newSDKTestClient(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write(
				[]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`),
			)
		},
	)

	_, err := c.Generate(context.Background(), DefaultPrompt)
	if err == nil {
		t.Fatal("Generate() expected error for 403")
	}
}
