package domain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/whiskerlabs/catbase/internal/services/mcp/catalog"
)

func TestCatListResourceHandler(t *testing.T) {
	handler := CatListResourceHandler(catalog.New())

	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: CatListResourceURI},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != CatListResourceURI {
		t.Errorf("expected URI %q, got %q", CatListResourceURI, content.URI)
	}
	if content.MIMEType != "application/json" {
		t.Errorf("expected JSON MIME type, got %q", content.MIMEType)
	}

	var payload CatListPayload
	if err := json.Unmarshal([]byte(content.Text), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(payload.Cats) != 4 {
		t.Fatalf("expected 4 cats, got %d", len(payload.Cats))
	}
	if payload.Cats[0].Name != "Mike" {
		t.Errorf("expected first cat Mike, got %q", payload.Cats[0].Name)
	}
}

func TestCatResourceHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := CatResourceHandler(catalog.New())
		uri := "cats://cats/3"
		result, err := handler(context.Background(), &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Contents) != 1 {
			t.Fatalf("expected 1 content item, got %d", len(result.Contents))
		}
		var cat CatView
		if err := json.Unmarshal([]byte(result.Contents[0].Text), &cat); err != nil {
			t.Fatalf("unmarshal cat: %v", err)
		}
		if cat.ID != 3 || cat.Name != "Kuro" {
			t.Errorf("expected Kuro (id 3), got %q (id %d)", cat.Name, cat.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := CatResourceHandler(catalog.New())
		_, err := handler(context.Background(), &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "cats://cats/999"},
		})
		if err == nil {
			t.Fatal("expected error for missing id")
		}
		if !strings.Contains(err.Error(), "no cat with id 999") {
			t.Fatalf("expected not-found message, got %v", err)
		}
	})

	t.Run("missing URI", func(t *testing.T) {
		handler := CatResourceHandler(catalog.New())
		_, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{}})
		if err == nil {
			t.Fatal("expected error for missing URI")
		}
	})
}

func TestParseCatIDFromURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    int
		wantErr bool
	}{
		{uri: "cats://cats/1", want: 1},
		{uri: "cats://cats/42", want: 42},
		{uri: "cats://cats/", wantErr: true},
		{uri: "cats://cats/abc", wantErr: true},
		{uri: "cats://cats/1/extra", wantErr: true},
		{uri: "dogs://dogs/1", wantErr: true},
		{uri: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := parseCatIDFromURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCatIDFromURI(%q): expected error", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCatIDFromURI(%q): %v", tt.uri, err)
			}
			if got != tt.want {
				t.Errorf("parseCatIDFromURI(%q) = %d, want %d", tt.uri, got, tt.want)
			}
		})
	}
}
