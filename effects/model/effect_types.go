package effectmodel

type EffectEnum string

const (
	EffectLog  EffectEnum = "fibtable_effect_enum_log"
	EffectCalc EffectEnum = "fibtable_effect_enum_calc"
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable payloads are routed to a worker by their partition key, so
// payloads sharing a key are handled in order by the same goroutine.
type Partitionable interface {
	PartitionKey() string
}
