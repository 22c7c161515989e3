package resolver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/eugenenazirov/confres/internal/config"
	"github.com/eugenenazirov/confres/internal/source"
)

// Resolver merges configuration sources in a fixed precedence order and
// extracts a validated record.
type Resolver struct {
	logger  *zap.Logger
	sources []source.Source
}

// New creates a resolver over the given sources. Earlier sources take
// precedence over later ones.
func New(logger *zap.Logger, sources ...source.Source) *Resolver {
	return &Resolver{
		logger:  logger,
		sources: sources,
	}
}

// Resolve consults every source in order, merges their entries
// first-write-wins, and builds the final record. Unavailable sources are
// skipped with a warning; any other produce failure aborts resolution.
// On success all required fields are populated and ClientID is non-negative.
func (r *Resolver) Resolve() (config.Record, error) {
	merged := make(map[string]source.RawEntry)

	for _, src := range r.sources {
		entries, err := src.Produce()
		if err != nil {
			if errors.Is(err, source.ErrSourceUnavailable) {
				r.logger.Warn("skipping unavailable source",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				continue
			}
			return config.Record{}, fmt.Errorf("produce source %s: %w", src.Name(), err)
		}

		// mergo fills only keys absent from the accumulated map, so
		// entries from earlier sources mask later ones.
		if err := mergo.Merge(&merged, entries); err != nil {
			return config.Record{}, fmt.Errorf("merge source %s: %w", src.Name(), err)
		}

		r.logger.Debug("merged source",
			zap.String("source", src.Name()),
			zap.Int("keys", len(entries)),
		)
	}

	return buildRecord(merged)
}

func buildRecord(merged map[string]source.RawEntry) (config.Record, error) {
	var missing error
	for _, key := range config.RequiredKeys() {
		if _, ok := merged[key]; !ok {
			missing = multierr.Append(missing, &MissingFieldError{Key: key})
		}
	}
	if missing != nil {
		return config.Record{}, missing
	}

	rawID := merged[config.KeyClientID].First()
	clientID, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil || clientID < 0 {
		return config.Record{}, &InvalidValueError{Key: config.KeyClientID, Value: rawID}
	}

	return config.Record{
		DBName:     merged[config.KeyDBName].First(),
		DBPassword: merged[config.KeyDBPassword].First(),
		BaseURL:    merged[config.KeyBaseURL].First(),
		ClientID:   clientID,
	}, nil
}
