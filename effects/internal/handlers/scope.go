package handlers

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrScopeClosed = errors.New("effect scope is closed")

// effectScope tracks the lifetime of one registered handler. Close is
// idempotent and may be called from any goroutine.
type effectScope struct {
	EffectId string
	done     chan struct{}
	once     sync.Once
	closeFn  func()
}

func newEffectScope(closeFn func()) *effectScope {
	return &effectScope{
		EffectId: uuid.New().String(),
		done:     make(chan struct{}),
		closeFn:  closeFn,
	}
}

func (es *effectScope) Close() {
	es.once.Do(func() {
		close(es.done)
		es.closeFn()
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	})
}

// Done is closed once Close has been called.
func (es *effectScope) Done() <-chan struct{} {
	return es.done
}
