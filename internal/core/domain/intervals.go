package domain

// DeriveIntervals sets every chunk's end to the next chunk's start, and the
// last chunk's end to the turn end. A turn without chunks is left alone.
//
// Transcriber only records Sync points at utterance starts, so pauses before
// the next Sync are folded into the preceding chunk. Running it twice is a
// no-op because the second pass writes the same values.
func (t *Turn) DeriveIntervals() {
	n := len(t.Chunks)
	if n == 0 {
		return
	}
	for i := 0; i < n-1; i++ {
		t.Chunks[i].End = t.Chunks[i+1].Start
	}
	t.Chunks[n-1].End = t.End
}

// DeriveIntervals derives chunk end times for every turn in the transcript.
// It must run before the chunks are treated as intervals.
func (t *Transcript) DeriveIntervals() {
	t.Walk(func(_ *Section, turn *Turn) {
		turn.DeriveIntervals()
	})
}
