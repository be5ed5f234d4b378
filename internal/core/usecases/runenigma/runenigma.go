package runenigma

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
	"github.com/sergeii/cipherhub/internal/metrics"
	"github.com/sergeii/cipherhub/pkg/cipher/alphabet"
	"github.com/sergeii/cipherhub/pkg/cipher/enigma"
)

var (
	ErrInvalidSettings      = errors.New("invalid rotor machine settings")
	ErrGroupingNotSupported = errors.New("military grouping is only supported for encryption")
)

type UseCase struct {
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
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

type Request struct {
	Settings  enigma.Settings
	Direction cipher.Direction
	Format    enigma.Format
	Text      string
}

type Response struct {
	Text    string
	Letters int
	// Rotor windows after the last letter, e.g. "AAF"
	Windows string
}

var NoResponse = Response{}

// Execute runs the whole message through a freshly set up machine.
// Encryption and decryption are the same operation on a rotor machine,
// the direction only matters for the output format and bookkeeping.
func (uc UseCase) Execute(_ context.Context, req Request) (Response, error) {
	started := uc.clock.Now()
	if req.Direction == "" {
		req.Direction = cipher.Encrypt
	}

	if req.Format == enigma.FormatMilitary && req.Direction == cipher.Decrypt {
		uc.metrics.CipherErrors.WithLabelValues(cipher.Enigma.String()).Inc()
		return NoResponse, ErrGroupingNotSupported
	}

	m, err := enigma.NewMachine(req.Settings)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(cipher.Enigma.String()).Inc()
		uc.logger.Debug().Err(err).Msg("Rejected rotor machine settings")
		return NoResponse, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	text, final := m.Transcribe(req.Text, m.InitialState(), req.Format)
	letters := alphabet.Latin.Count(alphabet.Normalize(req.Text))

	uc.metrics.CipherRequests.WithLabelValues(cipher.Enigma.String(), req.Direction.String()).Inc()
	uc.metrics.CipherLetters.WithLabelValues(cipher.Enigma.String()).Add(float64(letters))
	uc.metrics.CipherDurations.WithLabelValues(cipher.Enigma.String()).Observe(uc.clock.Since(started).Seconds())

	uc.logger.Debug().
		Stringer("direction", req.Direction).Stringer("format", req.Format).
		Int("letters", letters).Str("windows", final.Windows()).
		Msg("Transcribed message on rotor machine")

	return Response{
		Text:    text,
		Letters: letters,
		Windows: final.Windows(),
	}, nil
}
