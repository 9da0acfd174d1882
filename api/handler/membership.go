package handler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"opencsg.com/github-team-membership/api/httpbase"
	"opencsg.com/github-team-membership/common/config"
	"opencsg.com/github-team-membership/common/types"
	"opencsg.com/github-team-membership/component"
)

func NewMembershipHandler(config *config.Config) (*MembershipHandler, error) {
	mc, err := component.NewMembershipComponent(config)
	if err != nil {
		return nil, err
	}
	return &MembershipHandler{
		membership: mc,
	}, nil
}

type MembershipHandler struct {
	membership component.MembershipComponent
}

// Invoke godoc
// @Security     ApiKey
// @Summary      Run one lifecycle action on a GitHub team membership
// @Description  the outcome, success or failure, is carried in the returned progress event
// @Tags         Membership
// @Accept       json
// @Produce      json
// @Param        action path string true "create, read, update, delete or list"
// @Param        body body types.HandlerRequest true "handler request"
// @Success      200  {object}  types.ProgressEvent "OK"
// @Failure      400  {object}  types.APIBadRequest "Bad request"
// @Router       /membership/{action} [post]
func (h *MembershipHandler) Invoke(ctx *gin.Context) {
	var req types.HandlerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		slog.ErrorContext(ctx.Request.Context(), "Bad request format", slog.Any("error", err))
		httpbase.BadRequest(ctx, err.Error())
		return
	}

	action := types.Action(strings.ToUpper(ctx.Param("action")))
	if req.Action != "" && req.Action != action {
		msg := fmt.Sprintf("action '%s' in body does not match path action '%s'", req.Action, action)
		slog.ErrorContext(ctx.Request.Context(), "Bad request format", slog.String("error", msg))
		httpbase.BadRequest(ctx, msg)
		return
	}
	req.Action = action

	event := h.membership.Handle(ctx.Request.Context(), req)
	httpbase.OK(ctx, event)
}
