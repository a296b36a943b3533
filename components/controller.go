package components

import "github.com/yohamta/donburi"

// MovementKind identifies a movement action.
type MovementKind int

const (
	MoveAction MovementKind = iota
	JumpAction
)

// MovementAction is one request produced by the input stage for the current tick.
type MovementAction struct {
	Kind      MovementKind
	Direction float64 // -1, 0 or 1; only meaningful for MoveAction
}

func Move(direction float64) MovementAction {
	return MovementAction{Kind: MoveAction, Direction: direction}
}

func Jump() MovementAction {
	return MovementAction{Kind: JumpAction}
}

// ControllerInputData holds the actions queued this tick, in order.
type ControllerInputData struct {
	Actions []MovementAction
	Duck    bool
}

var ControllerInput = donburi.NewComponentType[ControllerInputData]()

// ControllerData is the character controller state. Grounded and Ducking are
// reclassified every tick by the probes and never carried over.
type ControllerData struct {
	MovementSpeed  float64
	JumpImpulse    float64
	MaxSlopeAngle  float64
	HasMaxSlope    bool
	Rotation       float64
	StandingHeight float64

	Grounded bool
	Ducking  bool
}

var Controller = donburi.NewComponentType[ControllerData]()
