// Package scheduler wires the rotation engine to wall-clock time: a cron
// engine fires the 15-minute scheduling cycle and the 6-hourly retry sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type Driver struct {
	cronEngine *cron.Cron
	service    contract.SchedulerService
	log        *logrus.Logger

	cycleSpec string
	sweepSpec string
}

func New(service contract.SchedulerService, log *logrus.Logger, cycleSpec, sweepSpec string) *Driver {
	return &Driver{
		cronEngine: cron.New(),
		service:    service,
		log:        log,
		cycleSpec:  cycleSpec,
		sweepSpec:  sweepSpec,
	}
}

func (d *Driver) Start() error {
	_, err := d.cronEngine.AddFunc(d.cycleSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, ran := d.service.RunCycle(ctx, time.Now())
		if !ran {
			return
		}
		if result.Failed > 0 {
			for _, cycleErr := range result.Errors {
				d.log.WithFields(logrus.Fields{
					"run_id":        result.RunID,
					"rotation_id":   cycleErr.RotationID,
					"rotation_name": cycleErr.RotationName,
				}).Errorf("rotation failed during cycle: %s", cycleErr.Err)
			}
		}
	})
	if err != nil {
		return err
	}

	_, err = d.cronEngine.AddFunc(d.sweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if _, err := d.service.RunRetrySweep(ctx, time.Now()); err != nil {
			d.log.Errorf("retry sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	d.cronEngine.Start()
	d.log.WithFields(logrus.Fields{
		"cycle_spec": d.cycleSpec,
		"sweep_spec": d.sweepSpec,
	}).Info("scheduler started")

	return nil
}

// Stop halts the cron engine and waits for in-flight jobs to finish.
func (d *Driver) Stop() {
	ctx := d.cronEngine.Stop()
	<-ctx.Done()
	d.log.Info("scheduler stopped")
}
