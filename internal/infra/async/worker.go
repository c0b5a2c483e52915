package async

import "context"

// Worker is a long-running background task. Run blocks until the context
// is cancelled and calls done on exit; Shutdown requests an early stop.
type Worker interface {
	Run(context.Context, func())
	Shutdown()
}
