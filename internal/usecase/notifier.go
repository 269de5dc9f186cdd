package usecase

import (
	"context"
	"log"
	"mercado_audiovisual/internal/usecase/interfaces"
	"time"
)

const defaultNotificationTimeout = 5 * time.Second

// Notifier emits notifications on behalf of the workflows. Emission happens
// after the triggering write committed; failures are logged and counted,
// never returned.
type Notifier struct {
	emitter interfaces.INotificationEmitter
	metrics interfaces.IMetricsRecorder
	timeout time.Duration
}

func NewNotifier(emitter interfaces.INotificationEmitter, metrics interfaces.IMetricsRecorder, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}
	return &Notifier{emitter: emitter, metrics: metrics, timeout: timeout}
}

type notice struct {
	destinatarioID string
	titulo         string
	mensaje        string
	link           *string
}

func (n *Notifier) send(ctx context.Context, area string, nt notice) {
	if n == nil || n.emitter == nil {
		return
	}
	// The caller's request may be cancelled as soon as the response is
	// written; the notification must still be attempted.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	created, err := n.emitter.Emit(ctx, nt.destinatarioID, nt.titulo, nt.mensaje, nt.link)
	if err != nil {
		log.Printf("[%s][notifier] emit failed destinatario_id=%s titulo=%q err=%v", area, nt.destinatarioID, nt.titulo, err)
		n.observe("failed")
		return
	}
	log.Printf("[%s][notifier] emitted notificacion_id=%s destinatario_id=%s", area, created.ID, nt.destinatarioID)
	n.observe("emitted")
}

func (n *Notifier) observe(result string) {
	if n.metrics != nil {
		n.metrics.ObserveNotification(result)
	}
}

func link(path string) *string {
	return &path
}
