package vorinterp

// prng is a Park-Miller minimal standard generator. The sequence is fixed, so the grain
// pattern of an image is reproducible.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1,
		div:       1.0 / 0x7fffffff,
	}
}

// Noise applies a grain filter of the given strength on the raster, in place.
// A pixel is left unchanged when the offset would push one of its channels past 255.
func Noise(r *Raster, amount int) {
	if amount <= 0 {
		return
	}
	rnd := newPrng()
	for o := 0; o < len(r.Pix); o += 3 {
		noise := (rnd.randomSeed() - 0.1) * float64(amount)
		rf, gf, bf := float64(r.Pix[o])+noise, float64(r.Pix[o+1])+noise, float64(r.Pix[o+2])+noise
		if Max(rf, gf, bf) >= 255 {
			continue
		}
		r.Pix[o] = uint8(Clamp(rf, 0, 255))
		r.Pix[o+1] = uint8(Clamp(gf, 0, 255))
		r.Pix[o+2] = uint8(Clamp(bf, 0, 255))
	}
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}
