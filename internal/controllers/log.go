package controllers

import "sysdesk/internal/logger"

var log = logger.For("api")
