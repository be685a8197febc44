package usecase

import "user-hub/internal/domain"

// StreamUsers opens live subscriptions to the user-created broadcast.
type StreamUsers struct {
	stream domain.UserStream
}

// NewStreamUsers creates a new StreamUsers usecase.
func NewStreamUsers(stream domain.UserStream) *StreamUsers {
	return &StreamUsers{stream: stream}
}

// Execute returns a channel of users created after this call and a cancel
// function releasing the subscription. The sequence is open-ended; the
// caller stops it by cancelling.
func (uc *StreamUsers) Execute() (<-chan domain.User, func()) {
	return uc.stream.Subscribe()
}
