package memory

import (
	"github.com/sergeii/cipherhub/internal/persistence"
	"github.com/sergeii/cipherhub/internal/persistence/memory/sessions"
)

func New() persistence.Repositories {
	return persistence.Repositories{
		Sessions: sessions.New(),
	}
}
