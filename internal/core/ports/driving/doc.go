// Package driving defines the ports the CLI, the MCP server, the TUI and
// the directory watcher call into. Implementations live in
// internal/core/services.
package driving
