package app

import (
	"context"
	"fmt"

	"lucky_slots/internal/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger перекладывает логи планировщика в zap
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// newPurgeJob планирует удаление истёкших refresh-сессий по расписанию spec
func newPurgeJob(spec string, auth service.AuthService, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithLogger(cronLogger{logger: logger.Sugar()}))

	_, err := c.AddFunc(spec, func() {
		if _, err := auth.PurgeExpiredSessions(context.Background()); err != nil {
			logger.Error("purge expired sessions", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session purge %q: %w", spec, err)
	}

	return c, nil
}
