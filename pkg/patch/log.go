package patch

import "sort"

// Log is an append-only, strictly ordered, non-overlapping sequence of
// patches. Every public mutator preserves two invariants:
//
//   - non-overlap: for adjacent patches a before b, a.End <= b.Start
//   - forward-monotone append: Append panics if the incoming patch's Start
//     is below the previous patch's End
//
// Three append shapes cover every emission site named in spec.md §4.1
// without ever sorting the whole log: Append (strict), AppendMergingTail
// (pops superseded trailing patches first), and BinarySearchInsert
// (partition-point insert for positions that precede already-emitted
// patches from later child productions).
type Log struct {
	source  []byte
	patches []Patch
}

// NewLog creates an empty patch log over source. source is retained only to
// validate UTF-8 character boundaries and line-terminator safety; it is
// never mutated by Log.
func NewLog(source []byte) *Log {
	return &Log{source: source}
}

// Len returns the number of patches currently in the log.
func (l *Log) Len() int { return len(l.patches) }

// At returns the patch at index i.
func (l *Log) At(i int) Patch { return l.patches[i] }

// Set overwrites the patch at index i. Later rules use this to mutate an
// earlier patch's Replacement in place (e.g. ASI recovery appending a
// semicolon to a strip already emitted for a previous statement).
func (l *Log) Set(i int, p Patch) { l.patches[i] = p }

// Patches returns the current ordered slice of patches. Callers must treat
// it as read-only; Log retains ownership.
func (l *Log) Patches() []Patch { return l.patches }

// Append adds patch p to the end of the log. It panics if p would violate
// forward-monotone ordering; the check always runs.
func (l *Log) Append(p Patch) {
	l.checkMonotone(p)
	l.patches = append(l.patches, p)
}

// AppendMergingTail adds patch p, first popping any trailing patches whose
// Start is already covered by p (i.e. p's Start is at or before their
// Start). This is used when an enclosing construct (e.g. a `declare`
// declaration) subsumes inner strips already emitted by child productions.
func (l *Log) AppendMergingTail(p Patch) {
	for len(l.patches) > 0 {
		last := l.patches[len(l.patches)-1]
		if last.Start >= p.Start {
			l.patches = l.patches[:len(l.patches)-1]
			continue
		}
		break
	}
	l.checkMonotone(p)
	l.patches = append(l.patches, p)
}

// BinarySearchInsert inserts p at the position dictated by ordering, even
// though later entries in the log may already have been appended by
// productions visited after p's owning production started (e.g. a
// parameter-property initializer inserted at the constructor's "init
// point" after the constructor body has already been walked).
func (l *Log) BinarySearchInsert(p Patch) {
	idx := sort.Search(len(l.patches), func(i int) bool {
		return l.patches[i].End > p.Start
	})
	if idx < len(l.patches) {
		if l.patches[idx].Start < p.End {
			panic("patch: BinarySearchInsert overlaps following patch")
		}
	}
	l.insertAt(idx, p)
}

// Insert inserts p at the given index directly, asserting that ordering
// remains intact against its new neighbors.
func (l *Log) Insert(index int, p Patch) {
	if index > 0 && l.patches[index-1].End > p.Start {
		panic("patch: Insert violates ordering with preceding patch")
	}
	if index < len(l.patches) && l.patches[index].Start < p.End {
		panic("patch: Insert violates ordering with following patch")
	}
	l.insertAt(index, p)
}

func (l *Log) insertAt(index int, p Patch) {
	l.patches = append(l.patches, Patch{})
	copy(l.patches[index+1:], l.patches[index:])
	l.patches[index] = p
}

// Truncate discards all patches at or beyond index n, restoring the log to
// the state it had after its n-th patch was appended. Used by rewind.
func (l *Log) Truncate(n int) {
	l.patches = l.patches[:n]
}

// AppendSplittingOnLineTerminator appends p, but if the original source
// text it would overwrite (up to the shorter of the replacement length and
// the span length) straddles a line terminator, splits it into an empty
// strip of the full span followed by a zero-width insert of the
// replacement at the span's end. This guarantees the emitted replacement
// text itself never has to encode, or collide with, a line terminator in
// the padding region the applier generates (see pkg/applier).
func (l *Log) AppendSplittingOnLineTerminator(p Patch) {
	end := p.Start + uint32(len(p.Replacement))
	if end > p.End {
		end = p.End
	}
	if end > uint32(len(l.source)) {
		end = uint32(len(l.source))
	}
	if p.Start <= end && ContainsLineTerminator(string(l.source[p.Start:end])) {
		l.Append(Patch{Start: p.Start, End: p.End})
		l.Append(Patch{Start: p.End, End: p.End, Replacement: p.Replacement})
		return
	}
	l.Append(p)
}

func (l *Log) checkMonotone(p Patch) {
	if len(l.patches) == 0 {
		return
	}
	last := l.patches[len(l.patches)-1]
	if p.Start < last.End {
		panic("patch: Append received non-monotone span")
	}
}

// NonOverlappingAndMonotone reports whether the log's current patches are
// strictly non-overlapping and in forward order. Exposed as a test hook
// for spec.md §8 property 3.
func (l *Log) NonOverlappingAndMonotone() bool {
	for i := 1; i < len(l.patches); i++ {
		if l.patches[i-1].End > l.patches[i].Start {
			return false
		}
	}
	return true
}
