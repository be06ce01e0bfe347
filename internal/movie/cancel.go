package movie

// cancelButtons are the pointer buttons that skip a movie.
const cancelButtons = ButtonLeft | ButtonRight

// Snapshot is the input and player state sampled once per playback poll.
type Snapshot struct {
	Playing       bool
	QuitRequested bool
	KeyPressed    bool
	GestureEnded  bool
	X, Y          int
	Buttons       Buttons
}

func (s Snapshot) interrupted() bool {
	return !s.Playing || s.QuitRequested || s.KeyPressed || s.GestureEnded
}

// debouncer decides when a playback poll loop ends. A pointer button only
// skips the movie once it has been seen pressed and then released, so a
// button still held from the click that started the movie does nothing
// until it is let go.
type debouncer struct {
	seen Buttons
}

// step folds one snapshot into the accumulator and reports whether the
// loop should stop.
func (d *debouncer) step(s Snapshot) bool {
	if s.interrupted() {
		return true
	}
	d.seen |= s.Buttons
	return d.seen&cancelButtons != 0 && s.Buttons&cancelButtons == 0
}

// sampler collects snapshots from the player and input backend in priority
// order. Later sources are not polled once an earlier one ends the loop, so
// a pending key is never consumed after the movie has already finished.
type sampler struct {
	player Player
	input  Input
}

func (s sampler) sample() Snapshot {
	snap := Snapshot{Playing: s.player.IsPlaying()}
	if !snap.Playing {
		return snap
	}
	if snap.QuitRequested = s.input.QuitRequested(); snap.QuitRequested {
		return snap
	}
	if _, snap.KeyPressed = s.input.PollKey(); snap.KeyPressed {
		return snap
	}
	if g, ok := s.input.PollGesture(); ok && g.Phase == GestureEnded {
		snap.GestureEnded = true
		return snap
	}
	snap.X, snap.Y, snap.Buttons = s.input.RawPointer()
	return snap
}
