package domain

// TimeUnset marks a chunk end time that has not been derived yet.
// Transcriber times are never negative.
const TimeUnset = -1.0

// Chunk is the smallest timed unit: transcribed text anchored to the Sync
// point that precedes it. End is derived, not read from the file.
type Chunk struct {
	// Start is the Sync time in seconds.
	Start float64 `json:"start"`

	// End is TimeUnset until DeriveIntervals runs.
	End float64 `json:"end"`

	// Text is the trimmed character data.
	Text string `json:"text"`
}

// HasEnd reports whether the end time has been derived.
func (c Chunk) HasEnd() bool {
	return c.End != TimeUnset
}

// Turn is a speaker turn with explicit bounds.
type Turn struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Chunks []Chunk `json:"chunks"`
}

// Len returns the number of chunks.
func (t *Turn) Len() int {
	return len(t.Chunks)
}

// Append adds a chunk after the existing ones.
func (t *Turn) Append(c Chunk) {
	t.Chunks = append(t.Chunks, c)
}

// Section is a labelled segment of a recording, such as "report".
type Section struct {
	Category string  `json:"category"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Turns    []Turn  `json:"turns"`
}

// Len returns the number of turns.
func (s *Section) Len() int {
	return len(s.Turns)
}

// Append adds a turn after the existing ones.
func (s *Section) Append(t Turn) {
	s.Turns = append(s.Turns, t)
}

// Episode is a recording session.
type Episode struct {
	Sections []Section `json:"sections"`
}

// Len returns the number of sections.
func (e *Episode) Len() int {
	return len(e.Sections)
}

// Append adds a section after the existing ones.
func (e *Episode) Append(s Section) {
	e.Sections = append(e.Sections, s)
}

// Transcript is a parsed Transcriber file.
// It owns its episodes exclusively; nothing in it is shared.
type Transcript struct {
	// Path is the file the transcript was read from, if any.
	Path string `json:"path,omitempty"`

	// Encoding is the character set the input was decoded with.
	Encoding string `json:"encoding,omitempty"`

	Episodes []Episode `json:"episodes"`
}

// Len returns the number of episodes.
func (t *Transcript) Len() int {
	return len(t.Episodes)
}

// Append adds an episode after the existing ones.
func (t *Transcript) Append(e Episode) {
	t.Episodes = append(t.Episodes, e)
}

// Walk calls fn for every turn in document order.
// Turns are passed by pointer so fn may modify their chunks in place.
func (t *Transcript) Walk(fn func(section *Section, turn *Turn)) {
	for e := range t.Episodes {
		episode := &t.Episodes[e]
		for s := range episode.Sections {
			section := &episode.Sections[s]
			for i := range section.Turns {
				fn(section, &section.Turns[i])
			}
		}
	}
}

// Stats summarises the size of a transcript.
type Stats struct {
	Episodes int `json:"episodes"`
	Sections int `json:"sections"`
	Turns    int `json:"turns"`
	Chunks   int `json:"chunks"`
}

// Stats counts the entities at each level.
func (t *Transcript) Stats() Stats {
	st := Stats{Episodes: len(t.Episodes)}
	for _, e := range t.Episodes {
		st.Sections += len(e.Sections)
	}
	t.Walk(func(_ *Section, turn *Turn) {
		st.Turns++
		st.Chunks += len(turn.Chunks)
	})
	return st
}
