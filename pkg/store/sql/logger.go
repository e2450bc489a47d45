//nolint:goprintffuncname
package sql

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// loggerAdaptor routes gorm's logging through logrus.
type loggerAdaptor struct {
	Logger *logrus.Logger
	Config LoggerAdaptorConfig
}

type LoggerAdaptorConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	// ParameterizedQueries keeps bound values, i.e. user supplied filter
	// values, out of the logged SQL.
	ParameterizedQueries bool
}

//nolint:ireturn
func NewLoggerAdaptor(l *logrus.Logger, cfg LoggerAdaptorConfig) logger.Interface {
	return &loggerAdaptor{l, cfg}
}

// LogMode implements the gorm.io/gorm/logger.Interface interface and is a no-op,
// the level is owned by the logrus logger.
//
//nolint:ireturn
func (l *loggerAdaptor) LogMode(_ logger.LogLevel) logger.Interface {
	return l
}

// ParamsFilter implements the gorm.io/gorm/logger.ParamsFilter interface.
func (l *loggerAdaptor) ParamsFilter(_ context.Context, sql string, params ...interface{}) (string, []interface{}) {
	if l.Config.ParameterizedQueries {
		return sql, nil
	}

	return sql, params
}

const (
	maximumCallerDepth int = 15
	minimumCallerDepth int = 4
)

// entry returns a logger entry tagged with the first caller outside of gorm.
func (l *loggerAdaptor) entry(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithContext(ctx).WithField("component", "store")

	pcs := make([]uintptr, maximumCallerDepth)
	depth := runtime.Callers(minimumCallerDepth, pcs)
	frames := runtime.CallersFrames(pcs[:depth])

	for frame, more := frames.Next(); more; frame, more = frames.Next() {
		if !strings.HasPrefix(frame.Function, "gorm.io/") {
			return entry.WithFields(logrus.Fields{
				"app_file": fmt.Sprintf("%s:%d", frame.File, frame.Line),
				"app_func": frame.Function + "()",
			})
		}
	}

	return entry
}

func (l *loggerAdaptor) Info(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Infof(format, args...)
}

func (l *loggerAdaptor) Warn(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Warnf(format, args...)
}

func (l *loggerAdaptor) Error(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Errorf(format, args...)
}

const nanosecondsPerMillisecond = 1e6

func (l *loggerAdaptor) statementEntry(
	ctx context.Context,
	elapsed time.Duration,
	statement func() (sql string, rowsAffected int64),
) *logrus.Entry {
	entry := l.entry(ctx).WithField(
		"elapsed", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/nanosecondsPerMillisecond),
	)

	if statement == nil {
		return entry
	}

	sql, rows := statement()
	entry = entry.WithField("sql", sql)

	if rows == -1 {
		return entry.WithField("rows", "-")
	}

	return entry.WithField("rows", rows)
}

// Trace logs a statement with its affected rows and elapsed time. Failed
// statements log at error level, slow ones at warn level and the rest at debug level.
func (l *loggerAdaptor) Trace(
	ctx context.Context,
	begin time.Time,
	statement func() (sql string, rowsAffected int64),
	err error,
) {
	if l.Logger.GetLevel() <= logrus.FatalLevel {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil &&
		l.Logger.IsLevelEnabled(logrus.ErrorLevel) &&
		(!errors.Is(err, gorm.ErrRecordNotFound) || !l.Config.IgnoreRecordNotFoundError):
		l.statementEntry(ctx, elapsed, statement).WithError(err).Error("SQL error")
	case l.Config.SlowThreshold != 0 &&
		elapsed > l.Config.SlowThreshold &&
		l.Logger.IsLevelEnabled(logrus.WarnLevel):
		l.statementEntry(ctx, elapsed, statement).Warnf("SLOW SQL >= %v", l.Config.SlowThreshold)
	case l.Logger.IsLevelEnabled(logrus.DebugLevel):
		l.statementEntry(ctx, elapsed, statement).Debug("SQL trace")
	}
}
