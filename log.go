package fastcdc

import "github.com/rs/zerolog"

// eventLogger emits debug/error events for driver activity. A nil
// *zerolog.Logger is a valid no-op: WithLogger is the only way to set one,
// and a chunker built without it carries an eventLogger with a nil log, on
// which every event method returns before building any field.
type eventLogger struct {
	log *zerolog.Logger
}

func noopLogger() *eventLogger { return &eventLogger{} }

func (l *eventLogger) boundary(offset uint64, length int, fpHash uint64, forced bool) {
	if l == nil || l.log == nil {
		return
	}

	l.log.Debug().
		Uint64("offset", offset).
		Int("length", length).
		Uint64("fp_hash", fpHash).
		Bool("forced", forced).
		Msg("chunk boundary")
}

func (l *eventLogger) suspend(offset uint64, bufLen int) {
	if l == nil || l.log == nil {
		return
	}

	l.log.Debug().
		Uint64("offset", offset).
		Int("buf_len", bufLen).
		Msg("suspended awaiting more data")
}

func (l *eventLogger) readError(offset uint64, err error) {
	if l == nil || l.log == nil {
		return
	}

	l.log.Error().
		Uint64("offset", offset).
		Err(err).
		Msg("source read error")
}

// WithLogger attaches a zerolog.Logger that the blocking and async drivers
// will emit debug-level boundary/suspend events and error-level read
// failures to. Omitting this option (the default) is a no-op: no events
// are built or emitted.
func WithLogger(log zerolog.Logger) ChunkerOption {
	return func(c *Chunker) {
		c.logger = &eventLogger{log: &log}
	}
}
