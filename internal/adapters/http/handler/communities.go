package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/ports"
)

type communityResponse struct {
	ID           domain.CommunityID `json:"id"`
	Name         string             `json:"name"`
	Region       string             `json:"region,omitempty"`
	CountChannel domain.ChannelID   `json:"count_channel,omitempty"`
	Category     domain.ChannelID   `json:"category,omitempty"`
}

type CommunitiesHandler struct {
	directory ports.CommunityDirectory
}

func NewCommunitiesHandler(directory ports.CommunityDirectory) *CommunitiesHandler {
	return &CommunitiesHandler{directory: directory}
}

// List reports the communities of the current configuration snapshot.
func (h *CommunitiesHandler) List(c *gin.Context) {
	communities := h.directory.Communities()
	resp := make([]communityResponse, 0, len(communities))
	for _, community := range communities {
		resp = append(resp, communityResponse{
			ID:           community.ID,
			Name:         community.Name,
			Region:       community.Region,
			CountChannel: community.CountChannel,
			Category:     community.Category,
		})
	}

	c.JSON(http.StatusOK, gin.H{"communities": resp})
}
