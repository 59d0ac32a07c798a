package workers

import (
	"log"

	"github.com/saikumarkadapa/portfolio-api/internal/models"
)

// Notifier is the two-method mail contract the workers deliver through.
// Both methods are non-throwing and report success as a bool.
type Notifier interface {
	SendContactNotification(n models.ContactNotification) bool
	SendAutoReply(n models.ContactNotification) bool
}

// StartNotificationWorkers launches a pool of worker goroutines that
// drain the contact-notification channel. Mail delivery happens here,
// fully decoupled from the request path: a slow or failing transport can
// never stall or fail a contact submission.
func StartNotificationWorkers(workerCount int, events <-chan models.ContactNotification, notifier Notifier) {
	log.Printf("Starting %d notification worker(s)...", workerCount)
	for i := 0; i < workerCount; i++ {
		go notificationWorker(events, notifier)
	}
}

// notificationWorker processes events until the channel is closed, which
// happens during graceful shutdown.
func notificationWorker(events <-chan models.ContactNotification, notifier Notifier) {
	for event := range events {
		// Failures are logged and swallowed; the submission already
		// succeeded and the counters are already consistent.
		if !notifier.SendContactNotification(event) {
			log.Printf("ERROR: Owner notification not delivered for submission from %s", event.Email)
		}
		if !notifier.SendAutoReply(event) {
			log.Printf("ERROR: Auto-reply not delivered to %s", event.Email)
		}
	}
}
