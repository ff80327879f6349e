// Package scheduler corre el backfill de atributos de matching de forma periódica.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pet-adoption/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// Job es la tarea periódica; devuelve cuántos registros tocó.
type Job func(ctx context.Context) (int, error)

// Scheduler envuelve robfig/cron con un único job.
type Scheduler struct {
	cron *cron.Cron
	spec string
	job  Job
	log  logger.Logger

	mu      sync.Mutex
	running bool
}

// New valida el spec de cron. Spec vacío => nil, nil (scheduler deshabilitado).
func New(spec string, job Job, log logger.Logger) (*Scheduler, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	log = log.With(map[string]any{"component": "scheduler"})
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cronLogger{log: log})),
		spec: spec,
		job:  job,
		log:  log,
	}, nil
}

// Start registra el job y arranca el cron.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.log.Info("cron started", map[string]any{"spec": s.spec})
	return nil
}

// Stop espera a que termine la ejecución en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("cron stopped", nil)
}

// RunOnce ejecuta el job salvo que ya haya uno en curso.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Warn("previous run still in progress, skipping", nil)
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	n, err := s.job(ctx)
	if err != nil {
		s.log.Error("scheduled job failed", map[string]any{"err": err, "updated": n})
		return
	}
	s.log.Debug("scheduled job finished", map[string]any{"updated": n})
}

// cronLogger adapta nuestro Logger a cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, kvToMap(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := kvToMap(keysAndValues)
	fields["err"] = err
	l.log.Error(msg, fields)
}

func kvToMap(kv []any) map[string]any {
	out := make(map[string]any, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			k = fmt.Sprint(kv[i])
		}
		out[k] = kv[i+1]
	}
	return out
}
