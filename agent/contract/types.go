// Package contract holds the envelope the agent runtime and the catalog
// tools exchange. The agent side owns all natural-language phrasing and
// confirmation prompts; tools only take and return structured data.
package contract

// ToolRequest is a tool invocation the agent asks the runtime to execute.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the structured envelope every tool returns. Error is set for
// failures the tool could not express as a typed payload; domain-level
// failures live inside Result with their own success flag and details.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
