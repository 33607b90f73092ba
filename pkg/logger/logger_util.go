package logger

import "go.uber.org/zap"

// CheckError reports whether err is set and logs msg when a logger is present.
// A nil logger means logging is disabled for the calling layer.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func MakeWarn(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

// Named returns a child logger, or nil when the layer is disabled.
func Named(logger *zap.Logger, enabled bool, name string) *zap.Logger {
	if logger == nil || !enabled {
		return nil
	}
	return logger.Named(name)
}
