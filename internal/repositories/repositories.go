/*
Package repositories holds the in-memory, persisted collection and the
operations for each entity type.

Every repository follows the same pattern: it subscribes to session
changes (identity present → reload its collection from the store,
identity absent → clear it), mutates by whole-collection snapshot, and
persists the full collection after every mutation.

Mutators model a network round trip with a fixed simulated latency.
The latency window is not cancelable and imposes no ordering: a mutator
reads its snapshot before sleeping, so overlapping calls race and the
last one to complete overwrites the collection (last write wins on the
snapshot, not a per-record merge). Reads during the window observe the
pre-mutation state.
*/
package repositories

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// simulate stands in for the network boundary a real deployment would
// have. Once started the timer runs to completion.
func simulate(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
