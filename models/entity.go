package models

// EntityType defines the class of a synchronized entity.
// The value determines which manifest set an identifier belongs to.
type EntityType string

const (
	// EntityMemoryChunk is one encrypted memory fragment.
	EntityMemoryChunk EntityType = "memory_chunk"

	// EntityConversation is one encrypted conversation transcript.
	EntityConversation EntityType = "conversation"

	// EntitySetting is one encrypted account setting value.
	EntitySetting EntityType = "setting"
)

// KnownEntityType reports whether t names one of the entity classes this
// build understands. Unknown types are skipped by validators rather than
// failing a whole exchange.
func KnownEntityType(t EntityType) bool {
	switch t {
	case EntityMemoryChunk, EntityConversation, EntitySetting:
		return true
	}
	return false
}

// Entity is one sealed record as stored by the relay or a device cache.
type Entity struct {
	// Type is the entity class.
	Type EntityType `json:"type"`

	// ID is the stable entity identifier, unique within its type.
	ID string `json:"id"`

	// Payload is the sealed content of the entity.
	Payload EncryptedPayload `json:"payload"`
}
