package main

import (
	"github.com/echa/config"
	logpkg "github.com/echa/log"

	"github.com/reoring/lensmeta/legacy"
	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/source"
)

var (
	log     = logpkg.NewLogger("MAIN") // main program
	metaLog = logpkg.NewLogger("META") // metadata schemas
	lgcyLog = logpkg.NewLogger("LGCY") // legacy coercion
	srceLog = logpkg.NewLogger("SRCE") // input decoding
)

func init() {
	metadata.UseLogger(metaLog)
	legacy.UseLogger(lgcyLog)
	source.UseLogger(srceLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]logpkg.Logger{
	"MAIN": log,
	"META": metaLog,
	"LGCY": lgcyLog,
	"SRCE": srceLog,
}

func initLogging() {
	cfg := logpkg.NewConfig()
	cfg.Level = logpkg.ParseLevel(config.GetString("logging.level"))
	cfg.Flags = logpkg.ParseFlags(config.GetString("logging.flags"))
	cfg.Backend = config.GetString("logging.backend")
	cfg.Filename = config.GetString("logging.filename")
	logpkg.Init(cfg)

	log = logpkg.NewLogger("MAIN")
	metaLog = logpkg.NewLogger("META")
	metaLog.SetLevel(logpkg.ParseLevel(config.GetString("logging.metadata")))
	lgcyLog = logpkg.NewLogger("LGCY")
	lgcyLog.SetLevel(logpkg.ParseLevel(config.GetString("logging.legacy")))
	srceLog = logpkg.NewLogger("SRCE")
	srceLog.SetLevel(logpkg.ParseLevel(config.GetString("logging.source")))

	metadata.UseLogger(metaLog)
	legacy.UseLogger(lgcyLog)
	source.UseLogger(srceLog)

	subsystemLoggers = map[string]logpkg.Logger{
		"MAIN": log,
		"META": metaLog,
		"LGCY": lgcyLog,
		"SRCE": srceLog,
	}
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(level logpkg.Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
