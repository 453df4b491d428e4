// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Observer reports scan progress and debug detail. Progress goes to stderr
// so it never mixes with report output on stdout.
type Observer struct {
	quiet bool
	log   *logrus.Logger
	out   io.Writer
}

// NewObserver creates an observer. quiet suppresses progress lines; debug
// enables step-by-step logging of extraction and matching.
func NewObserver(out io.Writer, quiet, debug bool) *Observer {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return &Observer{
		quiet: quiet,
		log:   log,
		out:   out,
	}
}

// Progress prints a user-facing progress line unless quiet mode is on.
func (o *Observer) Progress(format string, args ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.out, format+"\n", args...)
}

// Warn reports a non-fatal problem (e.g. a file skipped or unreadable).
func (o *Observer) Warn(format string, args ...any) {
	o.log.Warnf(format, args...)
}

// Debug logs component detail, visible only with --debug.
func (o *Observer) Debug(component, format string, args ...any) {
	o.log.WithField("component", component).Debugf(format, args...)
}

// StartStep begins a timed processing step and returns a completion
// function. Only visible with --debug.
func (o *Observer) StartStep(component, step, filePath string) func(success bool, detail string) {
	start := time.Now()
	entry := o.log.WithFields(logrus.Fields{
		"component": component,
		"file":      filePath,
	})
	entry.Debugf("start %s", step)

	return func(success bool, detail string) {
		elapsed := time.Since(start)
		if success {
			entry.Debugf("%s completed (%dms) %s", step, elapsed.Milliseconds(), detail)
		} else {
			entry.Debugf("%s failed (%dms) %s", step, elapsed.Milliseconds(), detail)
		}
	}
}
