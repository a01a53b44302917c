package redis

import (
	"context"
	"strings"
	"testing"
)

func TestConnect_UnreachableInstanceFails(t *testing.T) {
	// Port 1 is never a Redis instance; the dial is refused immediately.
	client, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1"})
	if err == nil {
		client.Close()
		t.Fatal("expected connection error")
	}
	if !strings.Contains(err.Error(), "127.0.0.1:1") {
		t.Errorf("error should name the instance, got %q", err)
	}
}
