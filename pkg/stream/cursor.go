package stream

import "github.com/leapstack-labs/lexkit/pkg/spi"

// TokenStream satisfies the cursor contract parsers consume.
var _ spi.TokenCursor = (*TokenStream)(nil)
