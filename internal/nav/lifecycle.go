package nav

// Lifecycle is the application run state
type Lifecycle int

const (
	Running Lifecycle = iota
	Quitting
)

func (l Lifecycle) String() string {
	switch l {
	case Running:
		return "running"
	case Quitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Quit moves to Quitting. There is no way back.
func (l *Lifecycle) Quit() {
	*l = Quitting
}

// Done reports whether the app is shutting down
func (l Lifecycle) Done() bool {
	return l == Quitting
}
