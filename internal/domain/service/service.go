package service

import (
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Instance struct {
	Rota      *rotaService
	Scheduler *scheduler
	Skip      *skipService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, evaluator contract.RecurrenceEvaluator, log *logrus.Logger) *Instance {
	locks := newRotationLocks()

	sched := newScheduler(dm, slackClient, evaluator, locks, log)

	return &Instance{
		Rota:      newRota(dm, slackClient, evaluator, sched, locks, log),
		Scheduler: sched,
		Skip:      newSkip(dm, slackClient, sched, locks, log),
	}
}
