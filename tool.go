package dashpage

import "context"

// ToolResult is the tagged outcome of a content-search tool call (image
// search, icon search, web search). Exactly one of Payload or Err is set.
// Payloads are plain strings (URLs, inline markup) substituted verbatim into
// generated content; the engine never interprets them.
type ToolResult struct {
	Payload string
	Err     string
}

// ToolSuccess returns a successful tool result carrying a payload.
func ToolSuccess(payload string) ToolResult {
	return ToolResult{Payload: payload}
}

// ToolFailure returns a failed tool result carrying a message.
func ToolFailure(message string) ToolResult {
	return ToolResult{Err: message}
}

// OK reports whether the tool call succeeded.
func (r ToolResult) OK() bool {
	return r.Err == ""
}

// ContentSearcher runs a content-search tool (images, icons, web search) on
// behalf of the generator. Implementations live outside this module.
type ContentSearcher interface {
	Search(ctx context.Context, query string) ToolResult
}
