package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edusphere-backend/internal/http/response"
	"github.com/yungbote/edusphere-backend/internal/platform/apierr"
	"github.com/yungbote/edusphere-backend/internal/services"
)

const msgMissingFields = "Missing required fields"

type CommunityHandler struct {
	communities services.CommunityService
}

func NewCommunityHandler(communities services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communities: communities}
}

// POST /create_community
func (h *CommunityHandler) Create(c *gin.Context) {
	body := readBody(c)
	name := body.Raw("name")
	description := body.Raw("description")
	creator := body.Raw("creator")
	if name == "" || description == "" || creator == "" {
		response.RespondErrorMessage(c, http.StatusBadRequest, msgMissingFields)
		return
	}
	community, err := h.communities.Create(c.Request.Context(), name, description, creator)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Community created", "community_id": community.ID})
}

// GET /generate_invite_link/:community_id
func (h *CommunityHandler) InviteLink(c *gin.Context) {
	link, err := h.communities.InviteLink(c.Request.Context(), c.Param("community_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"invite_link": link})
}

// POST /join_community
func (h *CommunityHandler) Join(c *gin.Context) {
	body := readBody(c)
	communityID := body.Raw("community_id")
	userID := body.Raw("user_id")
	if communityID == "" || userID == "" {
		response.RespondErrorMessage(c, http.StatusBadRequest, msgMissingFields)
		return
	}
	err := h.communities.Join(c.Request.Context(), communityID, userID)
	if ae, ok := apierr.As(err); ok && ae.Code == services.CodeAlreadyMember {
		response.RespondMessage(c, ae.Status, ae.Error())
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "User added to community")
}

// GET /user_communities/:user_id
func (h *CommunityHandler) ForUser(c *gin.Context) {
	list, err := h.communities.ForUser(c.Request.Context(), c.Param("user_id"))
	if ae, ok := apierr.As(err); ok && ae.Code == services.CodeNoCommunities {
		response.RespondMessage(c, ae.Status, ae.Error())
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, list)
}

// GET /community/:community_id
func (h *CommunityHandler) Get(c *gin.Context) {
	community, err := h.communities.Get(c.Request.Context(), c.Param("community_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, community)
}
