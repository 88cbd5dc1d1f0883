package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient(context.Background(), "://bad"); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestNewClientUnreachable(t *testing.T) {
	if _, err := NewClient(context.Background(), "redis://127.0.0.1:1"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
