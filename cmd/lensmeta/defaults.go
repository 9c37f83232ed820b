package main

import (
	"github.com/echa/config"
)

func init() {
	// input decoding
	config.SetDefault("parse.duplicate_keys", "error")
	config.SetDefault("parse.fail_fast", false)
	config.SetDefault("parse.max_depth", 64)
	config.SetDefault("parse.max_bytes", 4<<20) // 4MB

	// output
	config.SetDefault("output.color", true)
	config.SetDefault("output.lang", "en")
	config.SetDefault("output.format", "json")

	// reference signer
	config.SetDefault("sign.key", "")

	// logging
	config.SetDefault("logging.backend", "stderr")
	config.SetDefault("logging.flags", "time,micro")
	config.SetDefault("logging.level", "warn")
	config.SetDefault("logging.metadata", "warn")
	config.SetDefault("logging.legacy", "warn")
	config.SetDefault("logging.source", "warn")
}
