package core

// Summary is the end-of-run and HUD statistics record a game exposes to
// the platform.
type Summary struct {
	Score           int
	RocksDestroyed  int
	RocksEscaped    int
	TimeSeconds     int
	DifficultyLevel int // 1-based
	BulletsFired    int
	Accuracy        float64 // Percent, 0 when nothing was fired
	SpeedMin        float64
	SpeedMax        float64
	LivesRemaining  int
}

// Summarizer is implemented by games that can report run statistics.
type Summarizer interface {
	Summary() Summary
}
