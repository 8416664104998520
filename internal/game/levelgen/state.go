package levelgen

import "fmt"

// Step is a phase of the generation pipeline.
type Step int

// Pipeline steps in execution order. Separating is re-entered three times;
// State.Next says where it goes once rooms stop overlapping.
const (
	Idle Step = iota
	GenerateRooms
	Separating
	PlaceTerminals
	SegregateLayers
	MarkAndFillHallways
	EstablishGates
	Done
)

var stepNames = map[Step]string{
	Idle:                "idle",
	GenerateRooms:       "generate-rooms",
	Separating:          "separating",
	PlaceTerminals:      "place-terminals",
	SegregateLayers:     "segregate-layers",
	MarkAndFillHallways: "mark-and-fill-hallways",
	EstablishGates:      "establish-gates",
	Done:                "done",
}

// String returns the kebab-case step name.
func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// State is the pending step of a generator. Next is only meaningful while
// Step is Separating.
type State struct {
	Step Step
	Next Step
}

// String renders the state, including the continuation while separating.
func (s State) String() string {
	if s.Step == Separating {
		return fmt.Sprintf("%s→%s", s.Step, s.Next)
	}
	return s.Step.String()
}

// transitions maps each completed step to the state that follows it.
// Separating is absent: it resumes State.Next once converged.
var transitions = map[Step]State{
	GenerateRooms:       {Step: Separating, Next: PlaceTerminals},
	PlaceTerminals:      {Step: Separating, Next: SegregateLayers},
	SegregateLayers:     {Step: Separating, Next: MarkAndFillHallways},
	MarkAndFillHallways: {Step: EstablishGates},
	EstablishGates:      {Step: Done},
}

// after returns the state following a completed step.
func after(s Step) State {
	if next, ok := transitions[s]; ok {
		return next
	}
	return State{Step: Done}
}
