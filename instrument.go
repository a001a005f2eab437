package objectpool

import "github.com/sirupsen/logrus"

type nilInstrument struct{}

// NewNilInstrument returns an Instrument that discards all notifications.
func NewNilInstrument() Instrument {
	return &nilInstrument{}
}

func (self *nilInstrument) Allocated(string, int) {}
func (self *nilInstrument) Acquired(string)       {}
func (self *nilInstrument) Exhausted(string)      {}
func (self *nilInstrument) Released(string)       {}
func (self *nilInstrument) UnknownRelease(string) {}
func (self *nilInstrument) Closed(string)         {}

type loggerInstrument struct{}

// NewLoggerInstrument returns an Instrument that logs pool events. Acquire
// and release traffic is logged at debug level; exhaustion and unknown
// releases are warnings.
func NewLoggerInstrument() Instrument {
	return &loggerInstrument{}
}

func (self *loggerInstrument) Allocated(id string, capacity int) {
	logrus.WithField("context", id).Infof("allocated [%d]", capacity)
}

func (self *loggerInstrument) Acquired(id string) {
	logrus.WithField("context", id).Debug("acquired")
}

func (self *loggerInstrument) Exhausted(id string) {
	logrus.WithField("context", id).Warn("exhausted")
}

func (self *loggerInstrument) Released(id string) {
	logrus.WithField("context", id).Debug("released")
}

func (self *loggerInstrument) UnknownRelease(id string) {
	logrus.WithField("context", id).Warn("unknown release")
}

func (self *loggerInstrument) Closed(id string) {
	logrus.WithField("context", id).Info("closed")
}
