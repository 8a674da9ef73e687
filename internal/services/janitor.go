package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/thanhdanh14/CV-Analyzer/internal/repositories"
)

// Janitor periodically drops sessions that have been idle longer than the
// configured TTL.
type Janitor interface {
	Start(ctx context.Context)
	Stop()
	Sweep() int
}

type janitor struct {
	sessionRepo repositories.SessionRepository
	ttl         time.Duration
	interval    time.Duration
	now         func() time.Time
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewJanitor(sessionRepo repositories.SessionRepository, ttl, interval time.Duration) Janitor {
	return &janitor{
		sessionRepo: sessionRepo,
		ttl:         ttl,
		interval:    interval,
		now:         time.Now,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Janitor.
func (j *janitor) Start(ctx context.Context) {
	log.Printf("🚀 Starting session janitor (ttl=%s, every %s)\n", j.ttl, j.interval)

	j.wg.Add(1)
	go j.run(ctx)
}

// Stop implements Janitor.
func (j *janitor) Stop() {
	j.stopOnce.Do(func() {
		log.Println("🛑 Stopping session janitor...")
		close(j.stopChan)
		j.wg.Wait()
		log.Println("✅ Session janitor stopped")
	})
}

// Sweep implements Janitor.
func (j *janitor) Sweep() int {
	removed := j.sessionRepo.DeleteIdle(j.now().Add(-j.ttl))
	if removed > 0 {
		log.Printf("🧹 Purged %d idle sessions, %d remaining\n", removed, j.sessionRepo.Count())
	}
	return removed
}

func (j *janitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ctx.Done():
			log.Println("🔄 Session janitor context cancelled")
			return
		case <-ticker.C:
			j.Sweep()
		}
	}
}
