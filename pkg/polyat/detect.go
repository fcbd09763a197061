package polyat

// Thresholds is the ordered list of qualifying run lengths, ascending and
// non-empty. Passed explicitly so tests can vary it without touching shared
// state; Batch substitutes DefaultThresholds for an empty value.
type Thresholds []int

func DefaultThresholds() Thresholds {
	return Thresholds{10, 15, 20}
}

// Flags marks per threshold whether one read holds a poly-A/T run of at
// least that length. Monotone by construction: Flags[i+1] implies Flags[i].
type Flags []bool

// upper maps a/c/g/t to A/C/G/T, leaves the rest alone.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// DetectRuns scans seq once, tracking the current homopolymer run, and flags
// every threshold reached by a run of 'A' or of 'T' (case-insensitive).
// Mixed A/T stretches reset the run. Flags only go false to true within one
// read. O(len(seq)) time, O(1) extra space.
func DetectRuns(seq string, thresholds Thresholds) Flags {
	var (
		flags   = make(Flags, len(thresholds))
		runChar byte
		runLen  int
	)
	for i := 0; i < len(seq); i++ {
		var c = upper(seq[i])
		if c != 'A' && c != 'T' {
			runChar = 0
			runLen = 0
			continue
		}
		if c == runChar {
			runLen++
		} else {
			runChar = c
			runLen = 1
		}
		for j, t := range thresholds {
			if runLen >= t {
				flags[j] = true
			}
		}
	}
	return flags
}

// LongestRun returns the length and start index of the longest 'A' or 'T'
// homopolymer run in seq, (0, -1) when no A/T base occurs.
func LongestRun(seq string) (longest, start int) {
	start = -1
	var (
		runChar  byte
		runLen   int
		runStart int
	)
	for i := 0; i < len(seq); i++ {
		var c = upper(seq[i])
		if c != 'A' && c != 'T' {
			runChar = 0
			runLen = 0
			continue
		}
		if c == runChar {
			runLen++
		} else {
			runChar = c
			runLen = 1
			runStart = i
		}
		if runLen > longest {
			longest = runLen
			start = runStart
		}
	}
	return longest, start
}
