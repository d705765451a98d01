// Package docs provides generated OpenAPI documentation.
//
// Atrium API
//
//	@title			Atrium API
//	@version		1.0
//	@description	Discovery gateway API for browse sessions and submission workspaces over a digital repository.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/atriumhq/atrium
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:9280
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/atrium/serve.go -o ./swagger --parseDependency --parseInternal
