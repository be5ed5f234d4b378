package persistence

import (
	"github.com/sergeii/cipherhub/internal/core/repositories"
)

type Repositories struct {
	Sessions repositories.SessionRepository
}
