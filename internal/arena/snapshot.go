package arena

import "math"

// Snapshot is a flattened copy of the simulation state using primitive
// types only. Used by tests to check determinism and that a restart matches
// a freshly-initialized session exactly.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lives   int
	Outcome int
	Theme   int

	PlayerX, PlayerY float64
	PlayerSize       float64

	// Each enemy is 5 floats: X, Y, Size, VX, VY.
	EnemyCount int
	EnemyData  []float64

	// Each collectible is 5 floats: X, Y, Size, Points, Collected(0/1).
	CollectibleCount int
	CollectibleData  []float64

	// Each obstacle is 4 floats: X, Y, W, H.
	ObstacleCount int
	ObstacleData  []float64
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(s.Enemies)*5)
	for i := range s.Enemies {
		e := &s.Enemies[i]
		enemyData = append(enemyData, e.Pos.X, e.Pos.Y, e.Size, e.Vel.X, e.Vel.Y)
	}

	collectibleData := make([]float64, 0, len(s.Collectibles)*5)
	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		collected := 0.0
		if c.Collected {
			collected = 1.0
		}
		collectibleData = append(collectibleData, c.Pos.X, c.Pos.Y, c.Size, float64(c.Points), collected)
	}

	obstacleData := make([]float64, 0, len(s.Obstacles)*4)
	for i := range s.Obstacles {
		r := s.Obstacles[i].Rect
		obstacleData = append(obstacleData, r.X, r.Y, r.W, r.H)
	}

	return Snapshot{
		Tick:    s.Tick,
		Score:   s.Score,
		Lives:   s.Lives,
		Outcome: int(s.Outcome),
		Theme:   int(s.Theme),

		PlayerX:    s.Player.Pos.X,
		PlayerY:    s.Player.Pos.Y,
		PlayerSize: s.Player.Size,

		EnemyCount: len(s.Enemies),
		EnemyData:  enemyData,

		CollectibleCount: len(s.Collectibles),
		CollectibleData:  collectibleData,

		ObstacleCount: len(s.Obstacles),
		ObstacleData:  obstacleData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + uint64(snap.Outcome)
	h = h*31 + uint64(snap.Theme)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerSize)
	h = h*31 + uint64(snap.EnemyCount)
	h = h*31 + uint64(snap.CollectibleCount)
	h = h*31 + uint64(snap.ObstacleCount)

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CollectibleData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
