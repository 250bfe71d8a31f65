package crypto

// MT19937 is the 32-bit Mersenne Twister. Two generators seeded with the
// same value produce the same sequence, which makes searches driven by it
// reproducible. The zero value is not seeded; use NewMT19937.
type MT19937 struct {
	MT    [n]uint32
	Index int
}

const (
	w = 32
	n = 624
	m = 397
	r = 31
	a = 0x9908B0DF
	u = 11
	d = 0xFFFFFFFF
	s = 7
	b = 0x9D2C5680
	t = 15
	c = 0xEFC60000
	l = 18
	f = 1812433253

	lowerMask uint32 = (1 << r) - 1
	upperMask uint32 = ^lowerMask
)

// NewMT19937 returns a generator seeded with seed.
func NewMT19937(seed uint32) *MT19937 {
	src := &MT19937{}
	src.Seed(seed)
	return src
}

func (src *MT19937) Seed(seed uint32) {
	src.Index = n
	src.MT[0] = seed
	for i := 1; i < n; i++ {
		src.MT[i] = f*(src.MT[i-1]^(src.MT[i-1]>>(w-2))) + uint32(i)
	}
}

// Uint32 returns the next tempered output.
func (src *MT19937) Uint32() uint32 {
	if src.Index >= n {
		src.twist()
	}

	y := src.MT[src.Index]
	y ^= (y >> u) & d
	y ^= (y << s) & b
	y ^= (y << t) & c
	y ^= y >> l
	src.Index++
	return y
}

func (src *MT19937) twist() {
	for i := 0; i < n; i++ {
		x := src.MT[i]&upperMask + src.MT[(i+1)%n]&lowerMask
		xA := x >> 1
		if x%2 != 0 {
			xA ^= a
		}
		src.MT[i] = src.MT[(i+m)%n] ^ xA
	}
	src.Index = 0
}
