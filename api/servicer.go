package api

import (
	"context"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/service"
)

type contextKey string

const contextServicerKey contextKey = "7c1d2e5a-servicer"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, contextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(contextServicerKey).(service.Servicer)
}
