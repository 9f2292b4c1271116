package textproc

import "github.com/wortlab/deutschtext/internal/domain"

// runKey identifies a word within one processing run.
type runKey struct {
	class    domain.WordClass
	baseForm string
}

// runState tracks per-invocation occurrence counts, used solely to
// detect repeats inside one submission. It is created fresh for every
// Process call and passed down the pipeline — never shared between
// concurrent invocations.
type runState struct {
	counts map[runKey]int
}

func newRunState() *runState {
	return &runState{counts: make(map[runKey]int)}
}

// observe records one occurrence and reports whether the word was
// already seen earlier in the same run.
func (rs *runState) observe(class domain.WordClass, baseForm string) bool {
	k := runKey{class: class, baseForm: baseForm}
	seen := rs.counts[k] > 0
	rs.counts[k]++
	return seen
}
