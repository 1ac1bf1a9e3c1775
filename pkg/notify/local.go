package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
)

type armed struct {
	content Content
	trigger Trigger
	timer   *time.Timer
	cronID  cron.EntryID
}

// LocalPlatform arms notifications inside the process. Calendar triggers become cron
// entries, delay and date triggers become timers. Fired notifications go to the deliverer.
type LocalPlatform struct {
	mu        sync.Mutex
	cron      *cron.Cron
	entries   map[string]*armed
	deliverer Deliverer
	now       func() time.Time
}

func NewLocalPlatform(deliverer Deliverer, loc *time.Location) *LocalPlatform {
	if loc == nil {
		loc = time.Local
	}
	return &LocalPlatform{
		cron:      cron.New(cron.WithLocation(loc)),
		entries:   make(map[string]*armed),
		deliverer: deliverer,
		now:       time.Now,
	}
}

func platformLogger() *zap.Logger {
	return common.GetCategoryLogger(common.LoggerNameNotify, common.LoggerCategoryPlatform)
}

func (p *LocalPlatform) Start() {
	p.cron.Start()
}

// Stop disarms everything and waits for running cron jobs.
func (p *LocalPlatform) Stop() {
	_ = p.CancelAll(context.Background())
	<-p.cron.Stop().Done()
}

func (p *LocalPlatform) RequestPermissions(ctx context.Context) (bool, error) {
	return true, nil
}

func (p *LocalPlatform) Schedule(ctx context.Context, content Content, trigger Trigger) (string, error) {
	if err := trigger.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	entry := &armed{content: content, trigger: trigger}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch trigger.Kind {
	case TriggerCalendar:
		spec := fmt.Sprintf("%d %d * * *", trigger.Minute, trigger.Hour)
		cronID, err := p.cron.AddFunc(spec, func() { p.fire(id) })
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidTrigger, err)
		}
		entry.cronID = cronID
	case TriggerDelay:
		delay := time.Duration(trigger.Seconds) * time.Second
		entry.timer = time.AfterFunc(delay, func() { p.fire(id) })
	case TriggerDate:
		delay := max(0, trigger.Date.Sub(p.now()))
		entry.timer = time.AfterFunc(delay, func() { p.fire(id) })
	}

	p.entries[id] = entry
	platformLogger().Debug("Armed notification", zap.String("id", id), zap.Reflect("trigger", trigger))
	return id, nil
}

func (p *LocalPlatform) fire(id string) {
	p.mu.Lock()
	entry, ok := p.entries[id]
	if !ok {
		p.mu.Unlock()
		return
	}
	content := entry.content
	switch {
	case !entry.trigger.Repeats:
		p.disarm(id, entry)
	case entry.trigger.Kind == TriggerDelay:
		entry.timer.Reset(time.Duration(entry.trigger.Seconds) * time.Second)
	}
	p.mu.Unlock()

	if p.deliverer == nil {
		return
	}
	if err := p.deliverer.Deliver(context.Background(), content); err != nil {
		platformLogger().Error("Failed to deliver notification", zap.String("id", id), zap.Error(err))
	}
}

// disarm must be called with p.mu held.
func (p *LocalPlatform) disarm(id string, entry *armed) {
	if entry.timer != nil {
		entry.timer.Stop()
	}
	if entry.cronID != 0 {
		p.cron.Remove(entry.cronID)
	}
	delete(p.entries, id)
}

func (p *LocalPlatform) Cancel(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNotification, id)
	}
	p.disarm(id, entry)
	return nil
}

func (p *LocalPlatform) CancelAll(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, entry := range p.entries {
		p.disarm(id, entry)
	}
	return nil
}

// Armed lists the ids currently waiting to fire.
func (p *LocalPlatform) Armed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	return ids
}
