package main

import (
	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Atrium server via HTTP.

These commands require a running server (atrium serve).
Use --server to specify a custom server URL.

Examples:
  atrium api health                        # Check server health
  atrium api browse open author            # Open an author browse session
  atrium api browse next <session-id>      # Page forward
  atrium api workspaces init <col> <sub>   # Bootstrap a submission workspace`,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse session commands",
}

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "Repository object commands",
}

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Submission definition commands",
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Submission workspace commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:9280", "Server URL",
	)

	// Health and swagger endpoints at top level of api
	for _, ep := range endpoints.TopLevelCommands(endpoints.Config{}) {
		apiCmd.AddCommand(ep.Command(getServerURL))
	}

	// Browse sessions as subcommand group
	for _, ep := range endpoints.BrowseCommands() {
		browseCmd.AddCommand(ep.Command(getServerURL))
	}

	// Repository objects as subcommand group
	for _, ep := range endpoints.ObjectCommands() {
		objectsCmd.AddCommand(ep.Command(getServerURL))
	}

	// Submission definitions as subcommand group
	for _, ep := range endpoints.DefinitionCommands() {
		definitionsCmd.AddCommand(ep.Command(getServerURL))
	}

	// Submission workspaces as subcommand group
	for _, ep := range endpoints.WorkspaceCommands() {
		workspacesCmd.AddCommand(ep.Command(getServerURL))
	}

	apiCmd.AddCommand(browseCmd)
	apiCmd.AddCommand(objectsCmd)
	apiCmd.AddCommand(definitionsCmd)
	apiCmd.AddCommand(workspacesCmd)
	rootCmd.AddCommand(apiCmd)
}
