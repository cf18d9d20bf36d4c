package http

import (
	"context"
	"io"
	"net/http"

	"github.com/Sigi3012/Midnight/internal/adapter"
	"github.com/Sigi3012/Midnight/internal/app"
	"github.com/Sigi3012/Midnight/internal/logger"
	"github.com/Sigi3012/Midnight/internal/utils"
	"github.com/Sigi3012/Midnight/models"
)

// interactions answers pings itself and runs commands and button presses in
// the background. The HTTP response carries whatever the handler answers
// first; when it takes longer than the deadline a deferred acknowledgement
// is sent and the handler keeps going with followups.
func (h *Handler) interactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.interactions").Msg("failed to read request body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	in, err := adapter.DecodeInteraction(body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.interactions").Msg("failed to decode interaction")
		http.Error(w, "invalid interaction", http.StatusBadRequest)
		return
	}

	switch in.Type {
	case models.InteractionPing:
		writeJSON(w, log, adapter.PongResponse())
		return
	case models.InteractionApplicationCmd, models.InteractionMessageComponent:
	default:
		log.Warn().Err(ErrUnsupportedInteraction).Str("func", "*Handler.interactions").
			Int("type", int(in.Type)).
			Send()
		http.Error(w, ErrUnsupportedInteraction.Error(), http.StatusBadRequest)
		return
	}

	responder := newInteractionResponder(in, h.followups)
	in.Responder = responder

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), followupWindow)
	go func() {
		defer cancel()
		h.handle(ctx, in, responder)
	}()

	timer := h.clock.NewTimer(h.deadline)
	defer timer.Stop()

	var resp adapter.InteractionResponse
	select {
	case resp = <-responder.initial:
	case <-timer.C():
		resp = responder.deferResponse()
		log.Debug().Str("func", "*Handler.interactions").Int64("interaction_id", in.ID).Msg("interaction deferred")
	case <-r.Context().Done():
		return
	}

	writeJSON(w, log, resp)
}

func (h *Handler) handle(ctx context.Context, in models.Interaction, responder *interactionResponder) {
	var err error
	if in.Type == models.InteractionMessageComponent {
		err = h.components.Dispatch(ctx, in)
	} else {
		err = h.command(ctx, in)
	}
	if err == nil {
		return
	}

	logger.FromContext(ctx).Err(err).Str("func", "*Handler.handle").
		Int64("interaction_id", in.ID).
		Int64("user_id", in.UserID).
		Str("command", in.Command.Name).
		Str("custom_id", in.CustomID).
		Msg("error handling interaction")

	if !responder.hasReplied() {
		msg := models.Message{Content: app.MsgSomethingWentWrong}
		if err = responder.Reply(ctx, msg, true); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*Handler.handle").Msg("error sending failure reply")
		}
	}
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		log.Err(err).Str("func", "writeJSON").Msg("failed to write response")
	}
}
