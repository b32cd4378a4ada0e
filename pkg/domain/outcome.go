package domain

import "fmt"

// Channel names the input a decode attempt came from.
type Channel string

const (
	// ChannelVideo is a frame of a live capture stream.
	ChannelVideo Channel = "video"
	// ChannelImage is a single uploaded image.
	ChannelImage Channel = "image"
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	// OutcomeNotFound means the frame or image contained no readable code.
	OutcomeNotFound OutcomeKind = iota
	// OutcomeFound means a code was decoded; Outcome.Text holds its content.
	OutcomeFound
	// OutcomeError means the attempt failed; Outcome.Err holds the cause.
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFound:
		return "found"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one decode attempt. Outcomes produced by a video
// subscription carry the generation of the session that started it, so late
// callbacks from a released subscription can be told apart.
type Outcome struct {
	Kind       OutcomeKind
	Text       string
	Err        error
	Generation uint64
}

// Found returns a found outcome carrying text.
func Found(text string) Outcome { return Outcome{Kind: OutcomeFound, Text: text} }

// NotFound returns a not-found outcome.
func NotFound() Outcome { return Outcome{Kind: OutcomeNotFound} }

// Failed returns an error outcome carrying err.
func Failed(err error) Outcome { return Outcome{Kind: OutcomeError, Err: err} }

// WithGeneration returns a copy of o tagged with generation.
func (o Outcome) WithGeneration(generation uint64) Outcome {
	o.Generation = generation

	return o
}
