package command

import (
	"github.com/sirupsen/logrus"

	"github.com/tomasbasham/mlqueue"
)

// logHook implements mlqueue.MetricsHook on top of a logrus entry.
type logHook struct {
	entry *logrus.Entry
}

func (h logHook) fields(e mlqueue.Entity) *logrus.Entry {
	return h.entry.WithFields(logrus.Fields{
		"id":       e.ID(),
		"category": e.Category().String(),
		"waiting":  e.WaitingMinutes(),
		"score":    e.Score(),
	})
}

func (h logHook) OnEnqueue(e mlqueue.Entity, lane mlqueue.Lane) {
	h.fields(e).WithField("lane", lane.String()).Debug("entity enqueued")
}

func (h logHook) OnDequeue(e mlqueue.Entity, lane mlqueue.Lane) {
	h.fields(e).WithField("lane", lane.String()).Debug("entity dequeued")
}

func (h logHook) OnReclassify(e mlqueue.Entity, from, to mlqueue.Lane) {
	h.fields(e).WithFields(logrus.Fields{
		"from": from.String(),
		"to":   to.String(),
	}).Info("entity changed lane")
}
