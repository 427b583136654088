// Package gentables implements the build-time derivation of the Gear and
// mask tables (see ../../tables_gen.go): a ChaCha20 keystream expansion
// for the gear table, and a bias/Pearson-correlation greedy selection for
// the mask table. It is imported by cmd/fastcdc-gen (to regenerate
// tables_gen.go) and by the root package's golden-file test (to verify
// tables_gen.go still matches what this code would produce).
package gentables

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// DefaultSeed is used when neither --seed nor GEAR_SEED is set. It has no
// significance beyond being a fixed, documented value: regenerating the
// tables with a different seed changes every chunk boundary but never
// changes correctness.
const DefaultSeed uint64 = 0x9d3f1a7c5e8b4021

// GearTable derives 256 pseudo-random uint64 values from seed using a
// ChaCha20 keystream: the seed is expanded into a 32-byte key
// (little-endian, zero-padded) with a zero nonce — this is a
// deterministic table derivation, not a secret, so key reuse across runs
// with the same seed is the point, not a weakness.
func GearTable(seed uint64) ([256]uint64, error) {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return [256]uint64{}, err
	}

	var raw [256 * 8]byte
	cipher.XORKeyStream(raw[:], raw[:])

	var table [256]uint64
	for i := range table {
		table[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
	}

	return table, nil
}
