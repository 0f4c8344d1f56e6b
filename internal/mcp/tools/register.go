package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "bored_random",
		Description: "Suggest random activities from the Bored API. Set count to get several at once.",
	}, ToolRandom(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "bored_by_key",
		Description: "Look up one Bored API activity by its key.",
	}, ToolByKey(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "bored_by_params",
		Description: "Find an activity by type, participants, price and accessibility. Each numeric parameter takes an exact value or a min/max range; an exact value wins over the range.",
	}, ToolByParams(d))
}
