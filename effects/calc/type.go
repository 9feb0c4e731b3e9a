package calc

import (
	"math/big"
	"strconv"

	"github.com/on-the-ground/fibtable/effects"
)

// Payload asks for the term at index N.
type Payload struct {
	N int
}

// PartitionKey routes requests for the same index to the same worker.
func (p Payload) PartitionKey() string {
	return strconv.Itoa(p.N)
}

// Result is the answer to a Payload.
type Result struct {
	N     int
	Value *big.Int
	// Cached reports whether the term was already cached when the handler
	// picked the request up.
	Cached bool
	// Span covers the handler's work for this request.
	Span effects.TimeSpan
}
