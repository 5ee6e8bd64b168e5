package log

import (
	"github.com/rs/zerolog"

	evalErrors "github.com/ezoic/evalmetrics/pkg/errors"
)

// RegisterWarnBridge routes pkg/errors warnings through the given zerolog
// logger. Warnings that implement zerolog.LogObjectMarshaler are embedded
// as structured fields.
func RegisterWarnBridge(logger zerolog.Logger) {
	evalErrors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("metric warning")
	})
}
