package memory

import (
	"sync"

	"lineupbot/internal/models"
)

type Repository struct {
	ctx *models.LeagueContext
	mu  sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveLeagueContext(ctx *models.LeagueContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = ctx
}

func (r *Repository) GetLeagueContext() *models.LeagueContext {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ctx
}
