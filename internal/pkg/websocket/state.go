package websocket

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of a connection
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed
)

var ErrIllegalTransition = errors.New("illegal connection state transition")

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Idle is reachable from every state because emptied credentials force
// a teardown wherever the connection is.
var transitions = map[State][]State{
	StateIdle:       {StateConnecting},
	StateConnecting: {StateOpen, StateClosed, StateIdle},
	StateOpen:       {StateClosed, StateIdle},
	StateClosed:     {StateIdle},
}

// transition validates a move from one state to another
func transition(from, to State) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
