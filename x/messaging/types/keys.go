package types

// ModuleName is the name of the messaging module. It doubles as the store key,
// the error codespace, and the logger tag.
const ModuleName = "messaging"

var (
	// MessageContentPrefix prefixes the append-only id -> content table.
	MessageContentPrefix = []byte("msg_content")
	// MessageSenderPrefix prefixes the id -> submitting address table.
	MessageSenderPrefix = []byte("msg_sender")
	// MessageCountKey holds the number of messages ever stored. The stored
	// value is also the next id that will be assigned.
	MessageCountKey = []byte("msg_count")
)
