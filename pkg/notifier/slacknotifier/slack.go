package slacknotifier

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"

	"github.com/investrobot/ordertracker/pkg/slack/slackstyle"
	"github.com/investrobot/ordertracker/pkg/tracker"
)

var defaultLimiter = rate.NewLimiter(rate.Every(1*time.Second), 3)

type notifyTask struct {
	Channel string
	Opts    []slack.MsgOption
}

// Notifier posts the order submissions and the cancel failures of the
// tracker to a slack channel. Messages are queued and sent by a background
// worker; when the queue is full the message is dropped.
type Notifier struct {
	client  *slack.Client
	channel string
	limiter *rate.Limiter

	taskC chan notifyTask
}

type NotifyOption func(notifier *Notifier)

// WithLimiter replaces the shared default limiter of the message worker.
func WithLimiter(limiter *rate.Limiter) NotifyOption {
	return func(notifier *Notifier) {
		notifier.limiter = limiter
	}
}

func New(ctx context.Context, client *slack.Client, channel string, options ...NotifyOption) *Notifier {
	notifier := &Notifier{
		channel: channel,
		client:  client,
		limiter: defaultLimiter,
		taskC:   make(chan notifyTask, 100),
	}

	for _, o := range options {
		o(notifier)
	}

	go notifier.worker(ctx)

	return notifier
}

func (n *Notifier) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case task := <-n.taskC:
			// ignore the wait error
			_ = n.limiter.Wait(ctx)

			_, _, err := n.client.PostMessageContext(ctx, task.Channel, task.Opts...)
			if err != nil {
				log.WithError(err).
					WithField("channel", task.Channel).
					Errorf("slack api error: %s", err.Error())
			}
		}
	}
}

// Emit implements tracker.EventSink
func (n *Notifier) Emit(e tracker.Event) {
	switch e.Type {
	case tracker.EventOrderSubmitted:
		n.Notify(e.Message, submitAttachment(e))

	case tracker.EventOrderCancelFailed:
		n.Notify(e.Message, cancelFailedAttachment(e))
	}
}

func (n *Notifier) Notify(text string, attachments ...slack.Attachment) {
	n.NotifyTo(n.channel, text, attachments...)
}

func (n *Notifier) NotifyTo(channel, text string, attachments ...slack.Attachment) {
	if len(channel) == 0 {
		channel = n.channel
	}

	opts := []slack.MsgOption{
		slack.MsgOptionText(text, true),
		slack.MsgOptionAttachments(attachments...),
	}

	select {
	case n.taskC <- notifyTask{Channel: channel, Opts: opts}:
	case <-time.After(50 * time.Millisecond):
		log.Warnf("slack notify queue is full, message dropped: %s", text)
	}
}

func submitAttachment(e tracker.Event) slack.Attachment {
	fields := []slack.AttachmentField{
		{Title: "Instrument", Value: e.Instrument, Short: true},
	}

	var title = "Limit Order"
	var color = slackstyle.Green
	if s := e.Submit; s != nil {
		title = fmt.Sprintf("%s %s Order %s", slackstyle.SideIcon(s.Side), s.Type, s.Side)
		color = slackstyle.SideColor(s.Side)

		fields = append(fields,
			slack.AttachmentField{Title: "Side", Value: string(s.Side), Short: true},
			slack.AttachmentField{Title: "Lots", Value: strconv.FormatInt(s.Quantity, 10), Short: true},
			slack.AttachmentField{Title: "Price", Value: s.Price.String(), Short: true},
		)
	}

	if c := e.Confirmation; c != nil {
		fields = append(fields,
			slack.AttachmentField{Title: "Order ID", Value: c.OrderID, Short: true},
			slack.AttachmentField{Title: "Status", Value: c.Status.Label(), Short: true},
		)
	}

	return slack.Attachment{
		Color:  color,
		Title:  title,
		Fields: fields,
	}
}

func cancelFailedAttachment(e tracker.Event) slack.Attachment {
	fields := []slack.AttachmentField{
		{Title: "Instrument", Value: e.Instrument, Short: true},
	}

	if o := e.Order; o != nil {
		fields = append(fields,
			slack.AttachmentField{Title: "Order ID", Value: o.OrderID, Short: true},
			slack.AttachmentField{Title: "Price", Value: o.InitialSecurityPrice.String(), Short: true},
		)
	}

	if e.Error != nil {
		fields = append(fields, slack.AttachmentField{Title: "Error", Value: e.Error.Error()})
	}

	return slack.Attachment{
		Color:  slackstyle.Orange,
		Title:  "Cancel Failed",
		Fields: fields,
	}
}
