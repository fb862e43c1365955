package game

import "github.com/rs/zerolog"

// LogListener writes transitions at debug level and bank or score changes at info.
func LogListener(log zerolog.Logger) Listener {
	return ListenerFunc(func(c Change) {
		log.Debug().
			Str("event", string(c.Event)).
			Stringer("from", c.From).
			Stringer("to", c.To).
			Msg("transition")
		if c.Store != nil {
			log.Info().Str("event", string(c.Event)).Int("questions", len(c.Store)).Msg("question bank updated")
		}
		if c.Finished != nil {
			log.Info().
				Str("session", c.Finished.ID.String()).
				Int("score", c.Finished.Score).
				Int("total", c.Finished.Total).
				Msg("session finished")
		}
	})
}
