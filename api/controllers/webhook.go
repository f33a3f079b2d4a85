package controllers

import (
	"net/http"
	"time"

	"github.com/minsukang/idlequest-backend/api/responses"
	"github.com/minsukang/idlequest-backend/api/validators"
	"github.com/minsukang/idlequest-backend/internal/game"
	pkgerrors "github.com/minsukang/idlequest-backend/pkg/errors"
	"github.com/minsukang/idlequest-backend/pkg/kakao"
	"github.com/minsukang/idlequest-backend/pkg/logger"
	"github.com/minsukang/idlequest-backend/pkg/metrics"
)

// maxUtteranceRunes caps pathological inputs before they reach the parser.
const maxUtteranceRunes = 500

// SkillWebhook handles one Open Builder POST per chat message: decode,
// dispatch to the game service, render the skill template.
func SkillWebhook(svc game.Service, logg *logger.Logger, mx *metrics.WebhookMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "game service unavailable"))
			return
		}

		var payload kakao.SkillPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		playerID := payload.UserRequest.User.ID
		utterance := validators.SanitizeString(payload.UserRequest.Utterance, maxUtteranceRunes)

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPlayerID(ctx, playerID)
		}

		start := time.Now()
		reply, err := svc.HandleUtterance(ctx, playerID, utterance)
		if err != nil {
			mx.ObserveDuration("error", time.Since(start))
			responses.WriteError(ctx, logg, w, err)
			return
		}
		mx.ObserveDuration("ok", time.Since(start))
		mx.IncReply(string(reply.Kind))

		if logg != nil {
			logCtx := logg.WithReplyKind(ctx, string(reply.Kind))
			logg.Info(logCtx, "webhook.reply")
		}

		responses.WriteJSON(w, http.StatusOK, skillResponse(reply))
	}
}

// skillResponse converts a game reply into the outbound wire shape.
func skillResponse(reply game.Reply) kakao.SkillResponse {
	resp := kakao.SimpleTextResponse(reply.Text)
	if len(reply.QuickReplies) == 0 {
		return resp
	}
	buttons := make([]kakao.QuickReply, 0, len(reply.QuickReplies))
	for _, choice := range reply.QuickReplies {
		buttons = append(buttons, kakao.Message(choice.Label, choice.MessageText))
	}
	return resp.WithQuickReplies(buttons...)
}
