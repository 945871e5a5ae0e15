package crypto

// DefaultRounds is the default number of Miller-Rabin witness rounds
const DefaultRounds = 5

// DefaultKeySizeBits is the default bit length of each prime backing a key pair
const DefaultKeySizeBits = 1024

// MinKeySizeBits is the smallest key size for which n is guaranteed to exceed every byte value
const MinKeySizeBits = 9

// EncodingUTF8 is the only text encoding applied on both encrypt and decrypt paths
const EncodingUTF8 = "utf-8"
