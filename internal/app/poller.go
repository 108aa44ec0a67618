// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/practicum" // For the recoverable error family

	"github.com/sirupsen/logrus"
)

// HomeworkProvider is the slice of the Practicum client the poller needs.
type HomeworkProvider interface {
	HomeworkStatuses(ctx context.Context, from int64) (*homework.StatusPage, error)
}

// StatusPoller runs one query/validate/compare/notify cycle per tick and
// keeps the in-memory poll state between ticks: the watermark timestamp for
// the next query and the last message sent to the chat. State is lost on
// restart; the watermark resets to the process start time.
type StatusPoller struct {
	provider HomeworkProvider
	notifier domainTelegram.Client
	chatID   int64
	logger   *logrus.Entry

	watermark   int64
	lastMessage string
}

func NewStatusPoller(
	provider HomeworkProvider,
	notifier domainTelegram.Client,
	chatID int64,
	logger *logrus.Entry,
) *StatusPoller {
	return &StatusPoller{
		provider:  provider,
		notifier:  notifier,
		chatID:    chatID,
		logger:    logger,
		watermark: time.Now().Unix(),
	}
}

// Poll performs a single tick. It never returns an error: recoverable API
// failures are logged and swallowed, anything unexpected is logged and
// relayed to the chat as a bot-failure alert. Either way the next tick
// happens at the scheduler's fixed interval.
func (p *StatusPoller) Poll(ctx context.Context) {
	page, err := p.provider.HomeworkStatuses(ctx, p.watermark)
	if err != nil {
		if isRecoverable(err) {
			p.logger.WithError(err).Error("Homework statuses request failed, will retry on the next tick")
			return
		}
		p.reportFailure(err)
		return
	}

	message := homework.NoStatusMessage
	if len(page.Homeworks) > 0 {
		message, err = homework.StatusMessage(page.Homeworks[0])
		if err != nil {
			p.logger.WithError(err).Error("Failed to render homework status, will retry on the next tick")
			return
		}
	}

	if message != p.lastMessage {
		if err := p.notifier.SendMessage(p.chatID, message); err != nil {
			p.logger.WithError(err).Error("Failed to send status notification")
			// Do not advance the watermark past an undelivered change.
			return
		}
		p.logger.WithField("message", message).Info("Status notification sent")
		p.lastMessage = message
	} else {
		p.logger.Debug("Homework status unchanged, nothing to send")
	}

	p.watermark = page.CurrentDate
}

// reportFailure mirrors an unexpected tick failure to the chat so the
// operator sees it without reading logs. The alert's own send failure is
// only logged.
func (p *StatusPoller) reportFailure(err error) {
	p.logger.WithError(err).Error("Polling tick failed")

	alert := fmt.Sprintf("Сбой в работе программы: %v", err)
	if sendErr := p.notifier.SendMessage(p.chatID, alert); sendErr != nil {
		p.logger.WithError(sendErr).Error("Failed to send failure alert")
	}
}

func isRecoverable(err error) bool {
	return errors.Is(err, practicum.ErrRequestFailed) ||
		errors.Is(err, practicum.ErrBadStatusCode) ||
		errors.Is(err, practicum.ErrMalformedResponse) ||
		errors.Is(err, homework.ErrEmptyResponse) ||
		errors.Is(err, homework.ErrIncompleteHomework) ||
		errors.Is(err, homework.ErrUnknownStatus)
}
