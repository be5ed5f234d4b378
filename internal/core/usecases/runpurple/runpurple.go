package runpurple

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/purple"
)

type UseCase struct {
	spec    *purple.Spec
	clock   clockwork.Clock
	metrics *metrics.Collector
	logger  *zerolog.Logger
}

func New(
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		spec:    purple.Default(),
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

type Request struct {
	Initial   purple.State
	Direction cipher.Direction
	Text      string
}

type Response struct {
	Text    string
	Letters int
	Final   purple.State
}

func (uc UseCase) Execute(_ context.Context, req Request) Response {
	started := uc.clock.Now()
	if req.Direction == "" {
		req.Direction = cipher.Encrypt
	}

	var text string
	var final purple.State
	switch req.Direction {
	case cipher.Decrypt:
		text, final = uc.spec.Decrypt(req.Text, req.Initial)
	default:
		text, final = uc.spec.Encrypt(req.Text, req.Initial)
	}
	letters := alphabet.Latin.Count(alphabet.Normalize(req.Text))

	uc.metrics.CipherRequests.WithLabelValues(cipher.Purple.String(), req.Direction.String()).Inc()
	uc.metrics.CipherLetters.WithLabelValues(cipher.Purple.String()).Add(float64(letters))
	uc.metrics.CipherDurations.WithLabelValues(cipher.Purple.String()).Observe(uc.clock.Since(started).Seconds())

	uc.logger.Debug().
		Stringer("direction", req.Direction).Int("letters", letters).
		Int("fast", final.Fast).Int("medium", final.Medium).Int("slow", final.Slow).
		Msg("Transcribed message on switch machine")

	return Response{
		Text:    text,
		Letters: letters,
		Final:   final,
	}
}
