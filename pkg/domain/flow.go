package domain

// Flow records that handlers of From dispatch on To.
// It is documentation for graph rendering; the store never reads it.
type Flow struct {
	From  ActionID
	To    ActionID
	Label string
	// Error marks a flow into an error channel.
	Error bool
}
