package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogRequest(route string, fields log.Fields) {
	log.WithField("route", route).WithFields(fields).Info("Control request handled")
}

func LogRejected(route string, err error) {
	log.WithFields(log.Fields{
		"route": route,
		"error": err,
	}).Warn("Control request rejected")
}

func LogError(route string, err error) {
	log.WithFields(log.Fields{
		"route": route,
		"error": err,
	}).Error("Control request failed")
}
