package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/cipherhub/internal/core/usecases/createsession"
	"github.com/sergeii/cipherhub/internal/core/usecases/getsession"
	"github.com/sergeii/cipherhub/internal/core/usecases/presskeys"
	"github.com/sergeii/cipherhub/internal/core/usecases/removesession"
	"github.com/sergeii/cipherhub/internal/core/usecases/resetsession"
	"github.com/sergeii/cipherhub/internal/core/usecases/runenigma"
	"github.com/sergeii/cipherhub/internal/core/usecases/runpurple"
)

type Container struct {
	RunEnigma     runenigma.UseCase
	RunPurple     runpurple.UseCase
	CreateSession createsession.UseCase
	GetSession    getsession.UseCase
	PressKeys     presskeys.UseCase
	ResetSession  resetsession.UseCase
	RemoveSession removesession.UseCase
}

func New(
	runEnigmaUseCase runenigma.UseCase,
	runPurpleUseCase runpurple.UseCase,
	createSessionUseCase createsession.UseCase,
	getSessionUseCase getsession.UseCase,
	pressKeysUseCase presskeys.UseCase,
	resetSessionUseCase resetsession.UseCase,
	removeSessionUseCase removesession.UseCase,
) Container {
	return Container{
		RunEnigma:     runEnigmaUseCase,
		RunPurple:     runPurpleUseCase,
		CreateSession: createSessionUseCase,
		GetSession:    getSessionUseCase,
		PressKeys:     pressKeysUseCase,
		ResetSession:  resetSessionUseCase,
		RemoveSession: removeSessionUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(runenigma.New),
	fx.Provide(runpurple.New),
	fx.Provide(createsession.New),
	fx.Provide(getsession.New),
	fx.Provide(presskeys.New),
	fx.Provide(resetsession.New),
	fx.Provide(removesession.New),
	fx.Provide(New),
)
