package astiav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avscale/logger"
)

func LogLevelToAstiav(l logger.Level) astiav.LogLevel {
	switch l {
	case logger.LevelTrace:
		return astiav.LogLevelTrace
	case logger.LevelDebug:
		return astiav.LogLevelDebug
	case logger.LevelInfo:
		return astiav.LogLevelInfo
	case logger.LevelWarning:
		return astiav.LogLevelWarning
	case logger.LevelError:
		return astiav.LogLevelError
	case logger.LevelPanic:
		return astiav.LogLevelPanic
	case logger.LevelFatal:
		return astiav.LogLevelFatal
	default:
		return astiav.LogLevelQuiet
	}
}

func LogLevelFromAstiav(l astiav.LogLevel) logger.Level {
	switch {
	case l <= astiav.LogLevelQuiet:
		return logger.LevelUndefined
	case l <= astiav.LogLevelPanic:
		return logger.LevelPanic
	case l <= astiav.LogLevelFatal:
		return logger.LevelFatal
	case l <= astiav.LogLevelError:
		return logger.LevelError
	case l <= astiav.LogLevelWarning:
		return logger.LevelWarning
	case l <= astiav.LogLevelInfo:
		return logger.LevelInfo
	case l <= astiav.LogLevelDebug:
		return logger.LevelDebug
	default:
		return logger.LevelTrace
	}
}
