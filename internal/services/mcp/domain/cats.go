package domain

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/whiskerlabs/catbase/internal/services/mcp/catalog"
)

// CatDirectory is the read-only dataset view queried by tool and resource
// handlers.
type CatDirectory interface {
	All() []catalog.Cat
	ByID(id int) (catalog.Cat, bool)
	SearchBreed(query string) []catalog.Cat
	Indoor() []catalog.Cat
}

// CatView represents a cat record in MCP tool output.
type CatView struct {
	ID          int    `json:"id" jsonschema:"unique cat identifier"`
	Name        string `json:"name" jsonschema:"cat name"`
	Age         int    `json:"age" jsonschema:"age in years"`
	Breed       string `json:"breed" jsonschema:"breed label"`
	Color       string `json:"color" jsonschema:"coat color"`
	IsIndoor    bool   `json:"is_indoor" jsonschema:"whether the cat lives indoors"`
	FavoriteToy string `json:"favorite_toy" jsonschema:"favorite toy"`
}

// ListAllCatsInput represents the MCP tool input for listing all cats.
type ListAllCatsInput struct{}

// ListAllCatsResult represents the MCP tool output for listing all cats.
type ListAllCatsResult struct {
	Cats  []CatView `json:"cats" jsonschema:"all registered cats in insertion order"`
	Count int       `json:"count" jsonschema:"number of cats returned"`
}

// GetCatByIDInput represents the MCP tool input for an id lookup.
type GetCatByIDInput struct {
	ID int `json:"id" jsonschema:"cat identifier to look up"`
}

// GetCatByIDResult represents the MCP tool output for an id lookup.
type GetCatByIDResult struct {
	Cat CatView `json:"cat" jsonschema:"the matching cat record"`
}

// SearchByBreedInput represents the MCP tool input for a breed search.
type SearchByBreedInput struct {
	Breed string `json:"breed" jsonschema:"breed substring to search for, matched case-insensitively; empty matches every cat"`
}

// SearchByBreedResult represents the MCP tool output for a breed search.
type SearchByBreedResult struct {
	Cats  []CatView `json:"cats" jsonschema:"matching cats in insertion order"`
	Count int       `json:"count" jsonschema:"number of cats returned"`
}

// GetIndoorCatsInput represents the MCP tool input for the indoor filter.
type GetIndoorCatsInput struct{}

// GetIndoorCatsResult represents the MCP tool output for the indoor filter.
type GetIndoorCatsResult struct {
	Cats  []CatView `json:"cats" jsonschema:"indoor cats in insertion order"`
	Count int       `json:"count" jsonschema:"number of cats returned"`
}

// ListAllCatsTool defines the MCP tool schema for listing all cats.
func ListAllCatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_all_cats",
		Description: "Get a list of all cats",
	}
}

// GetCatByIDTool defines the MCP tool schema for an id lookup.
func GetCatByIDTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_cat_by_id",
		Description: "Get information about a specific cat by ID",
	}
}

// SearchByBreedTool defines the MCP tool schema for a breed search.
func SearchByBreedTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_by_breed",
		Description: "Search for cats by breed (case-insensitive substring match)",
	}
}

// GetIndoorCatsTool defines the MCP tool schema for the indoor filter.
func GetIndoorCatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_indoor_cats",
		Description: "Get only indoor cats",
	}
}

// catView maps a catalog record to its MCP representation.
func catView(cat catalog.Cat) CatView {
	return CatView{
		ID:          cat.ID,
		Name:        cat.Name,
		Age:         cat.Age,
		Breed:       cat.Breed,
		Color:       cat.Color,
		IsIndoor:    cat.Indoor,
		FavoriteToy: cat.FavoriteToy,
	}
}

// catViews maps catalog records to their MCP representation, preserving order.
func catViews(cats []catalog.Cat) []CatView {
	views := make([]CatView, 0, len(cats))
	for _, cat := range cats {
		views = append(views, catView(cat))
	}
	return views
}
