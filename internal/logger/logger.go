/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// LevelEnv selects the log level of the package logger.
const LevelEnv = "VPROP_LOG_LEVEL"

type envLevel struct {
	Level logrus.Level `env:"VPROP_LOG_LEVEL" envDefault:"warning"`
}

// Level parses VPROP_LOG_LEVEL. On error it returns logrus.WarnLevel.
func Level() (logrus.Level, error) {
	var e envLevel
	if err := env.Parse(&e); err != nil {
		return logrus.WarnLevel, fmt.Errorf("parse env: %w", err)
	}
	return e.Level, nil
}

var (
	mu sync.RWMutex
	lg *logrus.Logger
)

// Logger returns the package logger, creating it on first use.
// The level comes from VPROP_LOG_LEVEL and defaults to warning.
func Logger() *logrus.Logger {
	mu.RLock()
	l := lg
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if lg == nil {
		lg = newLogger(os.Stderr)
	}
	return lg
}

// Set replaces the package logger. A nil logger restores the default.
func Set(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	lg = l
}

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := Level()
	l.SetLevel(lvl)
	if err != nil {
		l.WithError(err).Warn("invalid " + LevelEnv + ", using warning")
	}
	return l
}
