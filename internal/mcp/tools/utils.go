package tools

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type errorPayload struct {
	Error string `json:"error"`
}

// jsonResult renders v as indented JSON text, the format every tool returns.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errorResult reports a failure in-band as {"error": msg}.
func errorResult(msg string) (*mcp.CallToolResult, error) {
	return jsonResult(errorPayload{Error: msg})
}

func stringArgument(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func boolArgument(args map[string]any, key string, fallback bool) bool {
	switch v := args[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return fallback
}

// maxIntArgument bounds numeric arguments so a huge JSON number cannot
// overflow int.
const maxIntArgument = math.MaxInt32

func intArgument(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		if math.IsNaN(v) {
			return fallback
		}
		return int(math.Max(-maxIntArgument, math.Min(v, maxIntArgument)))
	case int:
		return int(clampInt64(int64(v)))
	case int64:
		return int(clampInt64(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(clampInt64(n))
		}
		if f, err := v.Float64(); err == nil && !math.IsNaN(f) {
			return int(math.Max(-maxIntArgument, math.Min(f, maxIntArgument)))
		}
	}
	return fallback
}

func clampInt64(n int64) int64 {
	return max(-maxIntArgument, min(n, maxIntArgument))
}
