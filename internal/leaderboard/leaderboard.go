// Session-scoped best times. Nothing here survives process exit.
package leaderboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/WilsonHuang080705/minesweeper/internal/game"
)

var Log = logrus.New()

// Entry is the best recorded victory for one difficulty tier.
type Entry struct {
	GameId   uuid.UUID
	Playtime time.Duration
	SetAt    time.Time
}

// Leaderboard maps each difficulty tier to the fastest victory seen so far.
// Entries only ever improve.
type Leaderboard struct {
	mu   sync.Mutex
	best map[game.Difficulty]Entry
}

func New() *Leaderboard {
	return &Leaderboard{best: make(map[game.Difficulty]Entry)}
}

// Update records a victory and reports whether it beat the previous best for
// that tier. Called exactly once per won game.
func (l *Leaderboard) Update(d game.Difficulty, gameId uuid.UUID, playtime time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, ok := l.best[d]
	if ok && prev.Playtime <= playtime {
		return false
	}
	l.best[d] = Entry{GameId: gameId, Playtime: playtime, SetAt: time.Now()}
	Log.WithFields(logrus.Fields{
		"difficulty": d.String(),
		"game_id":    gameId,
		"playtime":   playtime.String(),
	}).Info("new best time")
	return true
}

// Best returns the current record for a tier, if one has been set.
func (l *Leaderboard) Best(d game.Difficulty) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.best[d]
	return e, ok
}
