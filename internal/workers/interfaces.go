// Package workers runs independent units of work concurrently with a cap on
// how many run at the same time.
package workers

import "context"

// Worker is a single unit of work. Run blocks until the work is done or ctx
// is cancelled.
//
// Example implementation:
//
//	type download struct{ id uuid.UUID }
//
//	func (d *download) Run(ctx context.Context) error {
//	    // fetch and store the archive
//	}
type Worker interface {
	Run(ctx context.Context) error
}
