package main

import (
	"os"
	"path/filepath"

	"github.com/project/catalog/config"
	"github.com/project/catalog/internal/app"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.NewConfig()

	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	logger, err := NewLogger(cfg.Log.File)

	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err = app.Run(logger, cfg); err != nil {
		_ = logger.Sync()
		log.Fatalf("can not run catalog: %s", err)
	}
}

// NewLogger writes JSON logs to logFile, or to stdout when logFile is "stdout".
func NewLogger(logFile string) (*zap.Logger, error) {
	var writeSyncer zapcore.WriteSyncer

	if logFile == "stdout" {
		writeSyncer = zapcore.Lock(os.Stdout)
	} else {
		_ = os.MkdirAll(filepath.Dir(logFile), 0755)

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

		if err != nil {
			return nil, err
		}

		writeSyncer = zapcore.AddSync(file)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	core := zapcore.NewCore(encoder, writeSyncer, zap.InfoLevel)

	return zap.New(core), nil
}
