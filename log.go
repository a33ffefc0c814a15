package twosquares

import (
	"github.com/privacybydesign/twosquares/primes"
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
	primes.Logger = Logger
}
