package app

import (
	"context"
	"net/http"
	"testing"
)

func TestHTTPServiceName(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", http.NewServeMux())
	if svc.Name() != "api" {
		t.Fatalf("unexpected service name %q", svc.Name())
	}
}

func TestHTTPServiceStartRejectsUninitializedServer(t *testing.T) {
	svc := &HTTPService{}
	if err := svc.Start(context.Background()); err == nil {
		t.Fatalf("expected error for uninitialized server")
	}
}

func TestHTTPServiceStopWithoutServerIsNoop(t *testing.T) {
	svc := &HTTPService{}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("expected no-op stop, got %v", err)
	}
}
