package keys

import (
	"errors"
	"time"
)

// ErrKeyPairNotFound is returned when a key pair ID is unknown to the session
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairMeta represents the metadata of an in-memory RSA key pair
type KeyPairMeta struct {
	ID              string    // Unique identifier of the key pair
	KeySizeBits     uint      // Bit length of each prime backing the key pair
	DateTimeCreated time.Time // Time the key pair was generated
}
