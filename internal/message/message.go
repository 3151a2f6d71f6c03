package message

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// DecelerateTickMsg advances the momentum scroll of the strip with the matching ID by one frame
type DecelerateTickMsg struct {
	StripID string
}

// ColumnSelectedMsg is sent when a column in a strip is tapped
type ColumnSelectedMsg struct {
	StripID string
	Column  int
}

// RefreshDataMsg swaps in the alternate demo data set and reloads both strips
type RefreshDataMsg struct{}
