package utils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0s"},
		{d: 37*time.Millisecond + 400*time.Microsecond, want: "37ms"},
		{d: 999 * time.Millisecond, want: "999ms"},
		{d: 42 * time.Second, want: "42s"},
		{d: 60 * time.Second, want: "1m:0s"},
		{d: 3*time.Minute + 5*time.Second, want: "3m:5s"},
		{d: 2*time.Hour + 10*time.Minute + 1*time.Second, want: "2h:10m:1s"},
		{d: 26*time.Hour + 4*time.Second, want: "1d:2h:0m:4s"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.d); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "payload")
	}))
	defer srv.Close()

	f, err := DownloadImage(context.Background(), srv.URL+"/image.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := DownloadImage(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("expected an error for a missing resource")
	}
}
