package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// The size of an MD4 checksum in bytes.
const MD4Size = 16

// The blocksize of MD4 in bytes.
const MD4BlockSize = 64

const (
	md4Init0 = 0x67452301
	md4Init1 = 0xEFCDAB89
	md4Init2 = 0x98BADCFE
	md4Init3 = 0x10325476

	md4Round2 = 0x5A827999
	md4Round3 = 0x6ED9EBA1
)

var (
	md4Shift1 = [4]int{3, 7, 11, 19}
	md4Shift2 = [4]int{3, 5, 9, 13}
	md4Shift3 = [4]int{3, 9, 11, 15}

	md4Index3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

// MD4Sum returns the MD4 checksum of msg as defined in RFC 1320.
//
// MD4 is cryptographically broken. It is here so that truncated digests can
// be searched for collisions, not to protect anything.
func MD4Sum(msg []byte) [MD4Size]byte {
	h := [4]uint32{md4Init0, md4Init1, md4Init2, md4Init3}
	p := MD4Pad(msg)
	for len(p) > 0 {
		out := md4Block(h, p[:MD4BlockSize])
		for i := range h {
			h[i] += out[i]
		}
		p = p[MD4BlockSize:]
	}

	var sum [MD4Size]byte
	for i, s := range h {
		binary.LittleEndian.PutUint32(sum[i*4:], s)
	}
	return sum
}

// MD4Hex returns the MD4 checksum of msg as 32 lowercase hex digits.
func MD4Hex(msg []byte) string {
	sum := MD4Sum(msg)
	return hex.EncodeToString(sum[:])
}

// MD4Pad returns a padded copy of msg whose length is a multiple of
// MD4BlockSize: a 1 bit, 0 bits until 56 bytes mod 64, then the message
// length in bits as a little-endian uint64.
func MD4Pad(msg []byte) []byte {
	n := len(msg) + 1
	if rem := n % MD4BlockSize; rem <= MD4BlockSize-8 {
		n += MD4BlockSize - 8 - rem
	} else {
		n += 2*MD4BlockSize - 8 - rem
	}
	p := make([]byte, n+8)
	copy(p, msg)
	p[len(msg)] = 0x80
	binary.LittleEndian.PutUint64(p[n:], uint64(len(msg))<<3)
	return p
}

// md4Block runs the three MD4 rounds over one chunk starting from h and
// returns the resulting words. The caller adds them into its running state.
func md4Block(h [4]uint32, chunk []byte) [4]uint32 {
	if len(chunk) != MD4BlockSize {
		panic("md4: chunk is not one block")
	}
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(chunk[i*4:])
	}

	// Sub-round n updates word (-n) mod 4 from the three words after it.
	step := func(n int, f func(a, b, c uint32) uint32, w, k uint32, s int) {
		i := (4 - n%4) % 4
		j, l, m := (i+1)%4, (i+2)%4, (i+3)%4
		h[i] = bits.RotateLeft32(h[i]+f(h[j], h[l], h[m])+w+k, s)
	}

	for n := 0; n < 16; n++ {
		step(n, md4F, x[n], 0, md4Shift1[n%4])
	}
	for n := 0; n < 16; n++ {
		step(n, md4G, x[n%4*4+n/4], md4Round2, md4Shift2[n%4])
	}
	for n := 0; n < 16; n++ {
		step(n, md4H, x[md4Index3[n]], md4Round3, md4Shift3[n%4])
	}
	return h
}

func md4F(x, y, z uint32) uint32 { return x&y | ^x&z }

func md4G(x, y, z uint32) uint32 { return x&y | x&z | y&z }

func md4H(x, y, z uint32) uint32 { return x ^ y ^ z }
