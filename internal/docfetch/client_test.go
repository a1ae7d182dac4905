package docfetch

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{
			name:        "pdf content type",
			contentType: "application/pdf",
			want:        true,
		},
		{
			name:        "pdf with charset suffix",
			contentType: "application/pdf; charset=binary",
			want:        true,
		},
		{
			name:        "html page",
			contentType: "text/html; charset=utf-8",
			want:        false,
		},
		{
			name:        "missing content type",
			contentType: "",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); ua != UserAgent {
					t.Errorf("User-Agent = %q, expected %q", ua, UserAgent)
				}
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			c := New()
			if got := c.IsPDF(server.URL); got != tt.want {
				t.Errorf("IsPDF() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestIsPDF_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := New()
	if c.IsPDF(server.URL) {
		t.Error("IsPDF should report false on network error")
	}
}

func TestIsPDF_MalformedURL(t *testing.T) {
	c := New()
	if c.IsPDF("://not-a-url") {
		t.Error("IsPDF should report false for a malformed URL")
	}
}

func TestDownload(t *testing.T) {
	want := []byte("%PDF-1.7 fake document body")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("User-Agent = %q, expected %q", ua, UserAgent)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(want) // nolint:errcheck
	}))
	defer server.Close()

	c := New()
	got, err := c.Download(server.URL)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Download body = %q, expected %q", got, want)
	}
}

func TestDownload_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := New()
	if _, err := c.Download(server.URL); err == nil {
		t.Error("Download should fail on a 404 response")
	}
}

func TestDownload_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New()
	if _, err := c.Download(server.URL); err == nil {
		t.Error("Download should fail on network error")
	}
}
