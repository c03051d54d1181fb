// Package scheduler ejecuta tareas de mantenimiento periódicas con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/componentes-api/pkg/logger"
)

// SessionPurger elimina revocaciones de sesión ya expiradas.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler agenda la purga de sesiones revocadas.
type Scheduler struct {
	cron    *cron.Cron
	purger  SessionPurger
	timeout time.Duration
	log     *logger.Logger
}

// New valida la expresión cron (formato estándar de 5 campos o descriptores como "@every 15m")
// y registra la purga. No arranca nada hasta Start.
func New(spec string, purger SessionPurger, timeout time.Duration, log *logger.Logger) (*Scheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("scheduler")
	s := &Scheduler{
		purger:  purger,
		timeout: timeout,
		log:     log,
	}
	cl := cronLogger{log: log}
	s.cron = cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	if _, err := s.cron.AddFunc(spec, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduler: expresión cron %q inválida: %w", spec, err)
	}
	return s, nil
}

// Start arranca el cron en su propia goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler iniciado")
}

// Stop detiene el cron y espera a que termine el job en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		s.log.Info().Msg("scheduler detenido")
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido con un job en curso")
	}
}

// RunOnce ejecuta la purga una vez.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purga de sesiones revocadas fallida")
		return 0, err
	}
	if n > 0 {
		s.log.Info().Int64("purged", n).Msg("sesiones revocadas purgadas")
	}
	return n, nil
}

// cronLogger adapta logger.Logger a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
