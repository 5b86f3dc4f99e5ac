package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type MembershipHandler struct {
	membershipService ports.MembershipService
}

func NewMembershipHandler(membershipService ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) AssignUser(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildAssignUserInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAssignUser)
		return
	}

	membership, err := h.membershipService.AssignUser(c.Request.Context(), middleware.GetCallerID(c), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailAssignUser, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMembershipItem(membership))
}

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	filter, err := validation.ParseMembershipFilter(c.Query("role"), c.Query("user_id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListMemberships)
		return
	}

	memberships, err := h.membershipService.ListMemberships(c.Request.Context(), projectID, filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListMemberships, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMembershipItems(memberships))
}

func (h *MembershipHandler) UpdateMembershipsRole(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	filter, err := validation.ParseMembershipFilter(c.Query("role"), c.Query("user_id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateMemberships)
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	role, err := validation.BuildMembershipRole(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateMemberships)
		return
	}

	count, err := h.membershipService.UpdateMembershipsRole(c.Request.Context(), projectID, filter, role)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateMemberships, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *MembershipHandler) DeleteMemberships(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	filter, err := validation.ParseMembershipFilter(c.Query("role"), c.Query("user_id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailDeleteMemberships)
		return
	}

	count, err := h.membershipService.DeleteMemberships(c.Request.Context(), projectID, filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailDeleteMemberships, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *MembershipHandler) GetMembershipUser(c *gin.Context) {
	membershipID, ok := pathID(c, "id", apierrors.MsgInvalidMembershipID)
	if !ok {
		return
	}

	user, err := h.membershipService.GetMembershipUser(c.Request.Context(), membershipID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetMembershipUser, zap.Uint64("membership_id", membershipID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
