// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pingbot/auth"
	"github.com/danielhkuo/pingbot/metrics"
	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/selection"
)

const (
	ReplyFailed     = "Something went wrong, sorry!"
	ReplyFailedHard = "Something went _really_ wrong, sorry!"
)

// Sender posts a message to the room, as a reply when replyTo is non-nil.
type Sender interface {
	Send(text string, replyTo *models.Message) error
}

type Dispatcher struct {
	engine *selection.Engine
	sender Sender
	newID  func() (string, error)
}

func NewDispatcher(engine *selection.Engine, sender Sender) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		sender: sender,
		newID:  func() (string, error) { return auth.GenerateID(6) },
	}
}

// Respond computes the reply to msg without sending it. An empty reply with
// a nil error means msg was not a command. Panics are returned as errors.
func (d *Dispatcher) Respond(msg models.Message) (cmd Command, reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cmd, ok := ParseMessage(msg)
	if !ok {
		return Command{}, "", nil
	}
	metrics.CommandsTotal.WithLabelValues(cmd.Intent).Inc()

	req := selection.Request{Site: cmd.Site, Poster: msg.OwnerID, Message: cmd.Message}
	switch cmd.Intent {
	case models.IntentHelp:
		reply = Help
	case models.IntentListSites:
		reply = d.engine.Sites()
	case models.IntentWhoIs:
		reply, err = d.engine.WhoIs(req)
	case models.IntentPingOne:
		reply, err = d.engine.PingOne(req)
	case models.IntentPingPresent:
		reply, err = d.engine.PingPresent(req)
	case models.IntentPingAll:
		reply, err = d.engine.PingAll(req)
	default:
		err = fmt.Errorf("unhandled intent %q", cmd.Intent)
	}
	return cmd, reply, err
}

// Dispatch answers msg in the room. A failure while composing the reply is
// answered with an apology; a failure sending either is followed by a
// best-effort plain message. Dispatch never panics.
func (d *Dispatcher) Dispatch(msg models.Message) {
	dispatchID, idErr := d.newID()
	log := slog.With("dispatch_id", dispatchID, "message_id", msg.ID, "poster", msg.OwnerID)
	if idErr != nil {
		log.Debug("generating dispatch id", "error", idErr)
	}
	log.Debug("dispatching message", "content", msg.Content)

	cmd, reply, err := d.Respond(msg)
	if err != nil {
		metrics.DispatchFailures.WithLabelValues("respond").Inc()
		log.Error("error dispatching message", "intent", cmd.Intent, "error", err)
		reply = ReplyFailed
	}
	if reply == "" {
		return
	}

	log.Info("replying", "intent", cmd.Intent, "reply", reply)
	if err := d.send(reply, &msg); err != nil {
		metrics.DispatchFailures.WithLabelValues("send").Inc()
		log.Error("error sending reply", "error", err)
		if err := d.send(ReplyFailedHard, nil); err != nil {
			log.Error("error sending fallback message", "error", err)
		}
	}
}

func (d *Dispatcher) send(text string, replyTo *models.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return d.sender.Send(text, replyTo)
}
