package random

import "time"

// Seed derives an integer seed from a high-resolution clock reading
// combined as seconds*1e9 + nanoseconds. It only decorrelates unseeded
// generators and must never be used for anything security related.
func Seed() int64 {
	now := time.Now()
	return ClockSeed(now.Unix(), int64(now.Nanosecond()))
}

// ClockSeed combines a (seconds, nanoseconds) reading into one seed.
func ClockSeed(sec, nsec int64) int64 {
	return sec*1e9 + nsec
}
