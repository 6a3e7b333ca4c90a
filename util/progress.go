package util

// Progress tracks completion of a batch of independent jobs and
// reports a running tally on stderr. It is safe to call JobDone from
// several goroutines.
type Progress struct {
	errs chan error
	done chan struct{}

	// Failed is the number of jobs that reported an error. It must
	// only be read after Close returns.
	Failed int
}

// NewProgress starts reporting for a batch of the given size.
func NewProgress(total int) *Progress {
	p := &Progress{errs: make(chan error), done: make(chan struct{})}
	go func() {
		completed := 0
		for err := range p.errs {
			if err == nil {
				completed++
			} else {
				p.Failed++
				if FlagQuiet {
					Warnf("%s", err)
				} else {
					Warnf("\r%s                                    \n", err)
				}
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Verbosef("\r%d of %d files done (%0.2f%%, %d errors)",
				completed, total, ratio, p.Failed)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

// JobDone records the outcome of one job.
func (p *Progress) JobDone(err error) {
	if p == nil {
		return
	}
	p.errs <- err
}

// Close stops reporting and waits for the final tally to be printed.
func (p *Progress) Close() {
	if p == nil {
		return
	}
	close(p.errs)
	<-p.done
}
