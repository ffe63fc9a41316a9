package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/box"
	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.GetLogger().Error("panic serving request", zap.Any("panic", r), zap.Stack("stack"))
				box.SetError(ctx, fmt.Errorf("panic: %v", r))
			}
		}()
		next(ctx)
	}
}

func AccessLog(l *zap.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Info("access",
					zap.String("remote", formatRemoteAddr(r)),
					zap.String("method", r.Method),
					zap.String("url", r.URL.String()),
					zap.Duration("took", time.Since(now)),
					zap.NamedError("error", box.GetError(ctx)),
				)
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	i := strings.LastIndex(r.RemoteAddr, ":")
	if i < 0 {
		return r.RemoteAddr
	}
	return r.RemoteAddr[:i]
}
