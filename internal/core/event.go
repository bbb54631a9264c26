package core

// Event is a notable gameplay moment reported by a game during a tick.
// Hosts use events for sound cues; games never depend on them being consumed.
type Event int

const (
	EventNone      Event = iota
	EventMove            // Piece or paddle moved by player input
	EventRotate          // Piece rotated
	EventLock            // Piece locked into the board
	EventLineClear       // One to three rows cleared
	EventTetris          // Four rows cleared at once
	EventBounce          // Ball reflected off a wall or paddle
	EventBrickHit        // Ball destroyed a brick
	EventWin             // Round won
	EventGameOver        // Game ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventMove:
		return "Move"
	case EventRotate:
		return "Rotate"
	case EventLock:
		return "Lock"
	case EventLineClear:
		return "LineClear"
	case EventTetris:
		return "Tetris"
	case EventBounce:
		return "Bounce"
	case EventBrickHit:
		return "BrickHit"
	case EventWin:
		return "Win"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// EventSink receives the events a game emits each tick, e.g. to play
// sound cues. Play must not block the caller's update loop.
type EventSink interface {
	Play(e Event)
}
