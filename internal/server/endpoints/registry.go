package endpoints

import (
	"github.com/atriumhq/atrium/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},

		// Browse session endpoints
		&OpenBrowseEndpoint{},
		&GetBrowseEndpoint{},
		&UpdateBrowseEndpoint{},
		&NextPageEndpoint{},
		&PrevPageEndpoint{},
		&CloseBrowseEndpoint{},

		// Repository object endpoints
		&GetObjectEndpoint{},

		// Submission endpoints
		&ListDefinitionsEndpoint{},
		&InitWorkspaceEndpoint{},
		&WorkspaceStatusEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}

// BrowseCommands returns the endpoints grouped under "api browse".
func BrowseCommands() []api.Endpoint {
	return []api.Endpoint{
		&OpenBrowseEndpoint{},
		&GetBrowseEndpoint{},
		&UpdateBrowseEndpoint{},
		&NextPageEndpoint{},
		&PrevPageEndpoint{},
		&CloseBrowseEndpoint{},
	}
}

// ObjectCommands returns the endpoints grouped under "api objects".
func ObjectCommands() []api.Endpoint {
	return []api.Endpoint{
		&GetObjectEndpoint{},
	}
}

// DefinitionCommands returns the endpoints grouped under "api definitions".
func DefinitionCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListDefinitionsEndpoint{},
	}
}

// WorkspaceCommands returns the endpoints grouped under "api workspaces".
func WorkspaceCommands() []api.Endpoint {
	return []api.Endpoint{
		&InitWorkspaceEndpoint{},
		&WorkspaceStatusEndpoint{},
	}
}

// TopLevelCommands returns the endpoints exposed directly under "api".
func TopLevelCommands(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{},
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}
