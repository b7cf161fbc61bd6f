package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/whiskerlabs/catbase/internal/services/mcp/domain"
)

type registrationKind int

const (
	registrationKindTools registrationKind = iota
	registrationKindResources
)

type registrationModule struct {
	name     string
	kind     registrationKind
	register func(registrationTarget) error
}

const (
	catToolsModuleName     = "cat-tools"
	catResourcesModuleName = "cat-resources"
)

type registrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type serverRegistrationAdapter struct {
	server *mcp.Server
}

func (r serverRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addTool(r.server, tool, handler)
}

func (r serverRegistrationAdapter) AddResourceTemplate(resourceTemplate *mcp.ResourceTemplate, handler mcp.ResourceHandler) {
	r.server.AddResourceTemplate(resourceTemplate, handler)
}

func (r serverRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type toolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newToolRegistrar[I any, O any]() toolRegistrar {
	return toolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var toolRegistrars = []toolRegistrar{
	newToolRegistrar[domain.ListAllCatsInput, domain.ListAllCatsResult](),
	newToolRegistrar[domain.GetCatByIDInput, domain.GetCatByIDResult](),
	newToolRegistrar[domain.SearchByBreedInput, domain.SearchByBreedResult](),
	newToolRegistrar[domain.GetIndoorCatsInput, domain.GetIndoorCatsResult](),
}

func addTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range toolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newRegistrationModules(dir domain.CatDirectory) []registrationModule {
	return []registrationModule{
		{
			name: catToolsModuleName,
			kind: registrationKindTools,
			register: func(registrar registrationTarget) error {
				return registerCatTools(registrar, dir)
			},
		},
		{
			name: catResourcesModuleName,
			kind: registrationKindResources,
			register: func(registrar registrationTarget) error {
				registerCatResources(registrar, dir)
				return nil
			},
		},
	}
}

func registerCatTools(registrar registrationTarget, dir domain.CatDirectory) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.ListAllCatsTool(), handler: domain.ListAllCatsHandler(dir)},
		{tool: domain.GetCatByIDTool(), handler: domain.GetCatByIDHandler(dir)},
		{tool: domain.SearchByBreedTool(), handler: domain.SearchByBreedHandler(dir)},
		{tool: domain.GetIndoorCatsTool(), handler: domain.GetIndoorCatsHandler(dir)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerTool(registrar registrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

// registerCatResources registers readable cat MCP resources.
func registerCatResources(registrar registrationTarget, dir domain.CatDirectory) {
	registrar.AddResource(domain.CatListResource(), domain.CatListResourceHandler(dir))
	registrar.AddResourceTemplate(domain.CatResourceTemplate(), domain.CatResourceHandler(dir))
}
