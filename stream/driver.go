package stream

// Step is a single stage invocation bound to its pipe endpoints, returning
// whether it changed observable state and any terminal error.
type Step func() (bool, error)

// Drive repeats a full pass over steps, in order, until one pass makes no
// progress on any step, or a step returns an error. This is the fixed-point
// driver loop the stage functions are designed to be called from; it is
// not itself a stage and performs no pipe I/O of its own - the embedder
// still owns feeding the top pipe and draining the bottom one between (or
// interleaved with) calls to Drive.
func Drive(steps ...Step) error {
	for {
		progressed := false
		for _, step := range steps {
			ok, err := step()
			if err != nil {
				return err
			}
			if ok {
				progressed = true
			}
		}
		if !progressed {
			return nil
		}
	}
}
