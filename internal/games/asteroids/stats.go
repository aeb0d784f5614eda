package asteroids

// Stats holds the per-session counters.
type Stats struct {
	Score          int
	RocksDestroyed int
	RocksEscaped   int
	BulletsFired   int
	Accuracy       float64 // Percent
	Lives          int
	ElapsedTicks   int
	Level          int // 0-based
}

// NewStats returns zeroed statistics with the given number of lives.
func NewStats(lives int) Stats {
	return Stats{Lives: max(lives, 0)}
}

// RecordShot counts a fired bullet.
func (s *Stats) RecordShot() {
	s.BulletsFired++
	s.updateAccuracy()
}

// RecordDestroyed awards points for a destroyed rock and returns them.
func (s *Stats) RecordDestroyed() int {
	points := 10 * (s.Level + 1)
	s.Score += points
	s.RocksDestroyed++
	s.updateAccuracy()
	return points
}

// RecordEscape deducts the penalty for a rock that left the screen.
func (s *Stats) RecordEscape(penalty int) {
	s.Score = max(s.Score-penalty, 0)
	s.RocksEscaped++
}

// LoseLife removes one life and returns how many remain.
func (s *Stats) LoseLife() int {
	s.Lives = max(s.Lives-1, 0)
	return s.Lives
}

// Advance counts one active tick and recomputes the level with levelAt.
// It reports whether the level went up.
func (s *Stats) Advance(levelAt func(ticks int) int) bool {
	s.ElapsedTicks++
	next := levelAt(s.ElapsedTicks)
	if next > s.Level {
		s.Level = next
		return true
	}
	return false
}

// TimeSeconds returns whole seconds played at the given tick rate.
func (s *Stats) TimeSeconds(tickRate int) int {
	if tickRate <= 0 {
		return 0
	}
	return s.ElapsedTicks / tickRate
}

func (s *Stats) updateAccuracy() {
	if s.BulletsFired == 0 {
		s.Accuracy = 0
		return
	}
	s.Accuracy = float64(s.RocksDestroyed) / float64(s.BulletsFired) * 100
}
