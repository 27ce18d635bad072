package changes

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const (
	approxCharsPerToken = 4
	tokenEncoding       = "cl100k_base"

	// DefaultMaxResponseTokens is the response ceiling enforced by MCP clients.
	DefaultMaxResponseTokens = 25000
)

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken

	estimateTokensFunc = defaultEstimateTokens
)

func estimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return estimateTokensFunc(text)
}

func defaultEstimateTokens(text string) int {
	if enc := getTokenEncoder(); enc != nil {
		if tokens := enc.Encode(text, nil, nil); len(tokens) > 0 {
			return len(tokens)
		}
	}
	return max(1, len(text)/approxCharsPerToken)
}

func getTokenEncoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(tokenEncoding)
		if err == nil {
			tokenEncoder = enc
		}
	})
	return tokenEncoder
}
