// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"sort"
	"sync"
)

// Reporter collects exceptions from independent units of work, such as the
// files of one CLI invocation, so that every failure can be shown together
// instead of stopping at the first one. A single parse never reports into a
// Reporter; it either succeeds or returns one Exception.
type Reporter interface {
	// Report adds the given record to the set. The return value is non-nil
	// when the record's code is fatal and the caller should stop.
	Report(Exception) Exception
	// Reported returns the accumulated exceptions ordered by location.
	Reported() []Exception
	// Err returns the accumulated exceptions as a MultiException, or nil
	// when nothing was reported.
	Err() error
}

// NewReporter returns a concurrent-safe Reporter. Codes listed in nonFatal
// are recorded but never returned from Report.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporter{nonFatal: nf}
}

type reporter struct {
	lock     sync.Mutex
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]Exception, len(r.reported))
	copy(out, r.reported)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Location(), out[j].Location()
		if a.URI != b.URI {
			return a.URI < b.URI
		}
		return a.Offset < b.Offset
	})
	return out
}

func (r *reporter) Err() error {
	reported := r.Reported()
	if len(reported) == 0 {
		return nil
	}
	return MultiException(reported)
}
