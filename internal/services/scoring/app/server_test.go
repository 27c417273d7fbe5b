package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func TestNewServerRequiresAddr(t *testing.T) {
	if _, err := NewServer(Config{DBPath: filepath.Join(t.TempDir(), "scoring.sqlite")}); err == nil {
		t.Fatal("expected error for missing address")
	}
}

func TestNewServerRequiresDBPath(t *testing.T) {
	if _, err := NewServer(Config{Addr: "localhost:0"}); err == nil {
		t.Fatal("expected error for missing database path")
	}
}

func TestServerServesAndShutsDown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("release port: %v", err)
	}

	server, err := NewServer(Config{
		Addr:   addr,
		DBPath: filepath.Join(t.TempDir(), "scoring.sqlite"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := client.Get("http://" + addr + "/healthz")
		if err == nil {
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected healthy server, got %d", resp.StatusCode)
			}
			_ = resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never became ready: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
