package services

import "sysdesk/internal/logger"

var (
	log         = logger.For("metrics")
	probeLog    = logger.For("probe")
	helpdeskLog = logger.For("helpdesk")
)
