// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger that writes to out at the named level. Unknown level
// names log at info.
func New(out io.Writer, level string, format string) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = out
	switch strings.ToLower(level) {
	case "error":
		log.Level = logrus.ErrorLevel
	case "warn":
		log.Level = logrus.WarnLevel
	case "debug":
		log.Level = logrus.DebugLevel
	default:
		log.Level = logrus.InfoLevel
	}
	switch strings.ToLower(format) {
	case FormatText, "":
		log.Formatter = &logrus.TextFormatter{DisableColors: true}
	case FormatJSON:
		log.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}
