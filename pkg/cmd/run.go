package cmd

import (
	"context"
	"net/http"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/investrobot/ordertracker/pkg/cmd/cmdutil"
	"github.com/investrobot/ordertracker/pkg/config"
	"github.com/investrobot/ordertracker/pkg/envvar"
	"github.com/investrobot/ordertracker/pkg/notifier/slacknotifier"
	"github.com/investrobot/ordertracker/pkg/tracker"
	"github.com/investrobot/ordertracker/pkg/util"
)

func init() {
	RunCmd.Flags().Bool("on-start", true, "run one tick before waiting for the schedule")
	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:          "run",
	Short:        "refresh the orders and cancel the stale ones on schedule",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		onStart, err := cmd.Flags().GetBool("on-start")
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var sinks []tracker.EventSink
		if cfg.Slack != nil && len(cfg.Slack.Token) > 0 {
			var options []slacknotifier.NotifyOption
			if len(cfg.Slack.RateLimit) > 0 {
				limiter, err := util.ParseRateLimitSyntax(cfg.Slack.RateLimit)
				if err != nil {
					return err
				}
				options = append(options, slacknotifier.WithLimiter(limiter))
			}

			log.Infof("adding slack notifier with channel: %s", cfg.Slack.Channel)
			notifier := slacknotifier.New(ctx, slack.New(cfg.Slack.Token), cfg.Slack.Channel, options...)
			sinks = append(sinks, notifier)
		}

		service, err := newOrderService(cfg)
		if err != nil {
			return err
		}

		t, err := newTracker(cfg, service, sinks...)
		if err != nil {
			return err
		}

		if cfg.Metrics != nil && len(cfg.Metrics.Bind) > 0 {
			server := serveMetrics(cfg.Metrics)
			defer func() {
				shutdownTimeout, _ := envvar.Duration("ORDERTRACKER_SHUTDOWN_TIMEOUT", 5*time.Second)
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancelShutdown()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.WithError(err).Error("metrics server shutdown error")
				}
			}()
		}

		job := &tickJob{tracker: t, config: cfg}

		c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
		if _, err := c.AddFunc(cfg.Schedule, func() { job.Run(ctx) }); err != nil {
			return err
		}

		if onStart {
			job.Run(ctx)
		}

		log.Infof("tracking %s, schedule %s", cfg.Instrument, cfg.Schedule)
		c.Start()

		cmdutil.WaitForSignal(ctx, syscall.SIGINT, syscall.SIGTERM)

		log.Infof("shutting down...")
		cancel()
		<-c.Stop().Done()
		return nil
	},
}

// tickJob is one pass of the robot loop: reload the orders and cancel the
// stale orders of the instrument when enabled.
type tickJob struct {
	tracker *tracker.OrderTracker
	config  *config.Config
}

func (j *tickJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	if !j.config.CancelStale {
		util.LogErrTo(j.logger(), j.tracker.Refresh(ctx), "order refresh failed")
		return
	}

	report, err := j.tracker.Reconcile(ctx)
	util.LogErrTo(j.logger(), err, "order reconcile failed")

	if report != nil && len(report.Results) > 0 {
		j.logger().Info(report.String())
	}
}

func (j *tickJob) logger() log.FieldLogger {
	return log.WithField("instrument", j.config.Instrument)
}

func serveMetrics(conf *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              conf.Bind,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("serving metrics on %s", conf.Bind)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("metrics server error")
		}
	}()

	return server
}
