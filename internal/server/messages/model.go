package messages

import "time"

// Message is one undelivered item in a recipient's buffer. Content is
// ciphertext at rest; the service decrypts on the way out. Group is
// empty for direct messages and carries the originating group name for
// fan-out copies.
type Message struct {
	ID        string
	Sender    string
	Recipient string
	Content   string
	Group     string
	Timestamp time.Time
}
