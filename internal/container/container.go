package container

import (
	"github.com/sirupsen/logrus"

	"github.com/memberhub/memberhub/config"
)

// app-level container to share constructed components across packages.
// The entity store is deliberately not held here; it is injected explicitly
// through router.InitModules.

var (
	cfg    *config.Config
	logger *logrus.Logger
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
