// Command maxcut formulates Max-Cut over a graph as a QUBO, Ising or BQM
// model, samples it with a local solver, and reports the decoded
// partition with an independently verified cut count.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("maxcut failed")
		os.Exit(1)
	}
}
