package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigSequencePrefix = ConfigPrefix + delimiter + "sequence"
	ConfigSequenceX      = ConfigSequencePrefix + delimiter + "x"
	ConfigSequenceY      = ConfigSequencePrefix + delimiter + "y"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"
	ConfigLogFormat = ConfigLogPrefix + delimiter + "format"

	ConfigEffectCalcHandlerPrefix     = ConfigPrefix + delimiter + "effect" + delimiter + "calc" + delimiter + "handler"
	ConfigEffectCalcHandlerBufferSize = ConfigEffectCalcHandlerPrefix + delimiter + "buffer_size"
	ConfigEffectCalcHandlerNumWorkers = ConfigEffectCalcHandlerPrefix + delimiter + "num_workers"

	ConfigMemoPrefix = ConfigPrefix + delimiter + "memo"
	ConfigMemoStore  = ConfigMemoPrefix + delimiter + "store"
	ConfigMemoSize   = ConfigMemoPrefix + delimiter + "size"

	ConfigMetricsEnabled = ConfigPrefix + delimiter + "metrics" + delimiter + "enabled"
)

// EnvPrefix prefixes environment overrides, e.g. FIB_CONFIG_SEQUENCE_X.
const EnvPrefix = "FIB"
