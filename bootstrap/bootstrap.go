package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/api"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/configuration"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/database"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/service"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

var VERSION = "dev"

// Bootstrap wires the database, the service and the HTTP api. start blocks
// until stop is called or a SIGTERM/SIGINT arrives.
func Bootstrap(c *configuration.Configuration) (start, stop func(), err error) {

	l, err := utils.NewLogger(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	utils.SetLogger(l)

	db := database.NewDatabase(&database.Config{
		Dir:        c.Dir,
		SaveOnStop: c.SaveOnStop,
	})

	b := api.Build(service.NewService(db), VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(l.Named("access")),
		api.InterceptorUnavailable(db),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, err
	}
	l.Info("listening", zap.String("addr", ln.Addr().String()))

	stopOnce := sync.Once{}
	stop = func() {
		stopOnce.Do(func() {
			if err := db.Stop(); err != nil {
				l.Error("stop database", zap.Error(err))
			}
			if err := s.Shutdown(context.Background()); err != nil {
				l.Error("shutdown http server", zap.Error(err))
			}
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		l.Info("signal received", zap.String("signal", sig.String()))
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				l.Error("start database", zap.Error(err))
				stop()
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Error("serve", zap.Error(err))
			}
		}()

		wg.Wait()
		_ = l.Sync()
	}

	return start, stop, nil
}
