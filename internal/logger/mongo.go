package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor returns a driver command monitor that logs through logger.
//
//   - verbose: every command start and completion is logged at debug level,
//     including the raw command document. Very noisy; meant for local runs.
//   - slowThreshold: completed commands taking at least this long are logged
//     at warn level regardless of verbose. Zero disables the check.
//
// Failed commands are always logged at warn level. The caller still gets the
// error from the driver; this is only a record of it.
func NewCommandMonitor(logger *zerolog.Logger, verbose bool, slowThreshold time.Duration) *event.CommandMonitor {
	mongoLogger := logger.With().Str("component", "mongo").Logger()

	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			if !verbose {
				return
			}
			mongoLogger.Debug().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Str("connection_id", evt.ConnectionID).
				Str("document", evt.Command.String()).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			if slowThreshold > 0 && evt.Duration >= slowThreshold {
				mongoLogger.Warn().
					Str("command", evt.CommandName).
					Str("database", evt.DatabaseName).
					Int64("request_id", evt.RequestID).
					Dur("duration", evt.Duration).
					Dur("threshold", slowThreshold).
					Msg("slow mongo command")
				return
			}
			if verbose {
				mongoLogger.Debug().
					Str("command", evt.CommandName).
					Int64("request_id", evt.RequestID).
					Dur("duration", evt.Duration).
					Msg("mongo command succeeded")
			}
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			mongoLogger.Warn().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("mongo command failed")
		},
	}
}
