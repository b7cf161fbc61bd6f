package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// CatListResourceURI addresses the full cat listing resource.
	CatListResourceURI = "cats://cats"
	// catResourceURIPrefix prefixes single-record resource URIs.
	catResourceURIPrefix = "cats://cats/"
)

// CatListPayload is the JSON body of the cat listing resource.
type CatListPayload struct {
	Cats []CatView `json:"cats"`
}

// CatListResource describes the readable full-listing resource.
func CatListResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         CatListResourceURI,
		Name:        "cat-list",
		Description: "All registered cats in insertion order",
		MIMEType:    "application/json",
	}
}

// CatListResourceHandler returns a readable cat listing resource.
func CatListResourceHandler(dir CatDirectory) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dir == nil {
			return nil, fmt.Errorf("cat directory is not configured")
		}

		payload := CatListPayload{Cats: catViews(dir.All())}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal cat list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      CatListResourceURI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

// CatResourceTemplate describes the per-record resource template.
func CatResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		URITemplate: catResourceURIPrefix + "{id}",
		Name:        "cat",
		Description: "A single cat record by id",
		MIMEType:    "application/json",
	}
}

// CatResourceHandler returns a readable single-record resource.
func CatResourceHandler(dir CatDirectory) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dir == nil {
			return nil, fmt.Errorf("cat directory is not configured")
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("cat id is required; use URI format %s{id}", catResourceURIPrefix)
		}
		uri := req.Params.URI

		catID, err := parseCatIDFromURI(uri)
		if err != nil {
			return nil, fmt.Errorf("parse cat id from URI: %w", err)
		}

		cat, ok := dir.ByID(catID)
		if !ok {
			return nil, fmt.Errorf("no cat with id %d", catID)
		}

		data, err := json.MarshalIndent(catView(cat), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal cat: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

// parseCatIDFromURI extracts the record id from a URI of the form
// cats://cats/{id}.
func parseCatIDFromURI(uri string) (int, error) {
	rest, ok := strings.CutPrefix(uri, catResourceURIPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return 0, fmt.Errorf("URI %q does not match %s{id}", uri, catResourceURIPrefix)
	}
	catID, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("cat id %q is not an integer", rest)
	}
	return catID, nil
}
