package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
)

// CtxWithLogrus puts a logrus-backed logger of the given level into the
// context and also makes it the default logger.
func CtxWithLogrus(
	ctx context.Context,
	level logger.Level,
) (context.Context, Logger) {
	l := logrus.Default().WithLevel(level)
	SetDefault(func() Logger {
		return l
	})
	return logger.CtxWithLogger(ctx, l), l
}
