package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bnema/gathering-relay/internal/adapters/http/handler"
	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
)

var _ = Describe("SessionsHandler", func() {
	var (
		router *gin.Engine
		relay  *mockStatusProvider
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()

		count := 3
		session := application.SessionStatus{
			ID:                "sess-1",
			Code:              "VerbNounAdjective",
			State:             domain.SessionActive,
			Channel:           "chan-9",
			OriginCommunity:   "alpha",
			Members:           []domain.CommunityID{"alpha"},
			CreatedAt:         time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
			LastActivity:      time.Date(2026, 10, 1, 20, 5, 0, 0, time.UTC),
			LastReportedCount: &count,
		}
		relay = &mockStatusProvider{
			status: application.RelayStatus{Sessions: []application.SessionStatus{session}, Staged: 2},
			sessions: map[domain.LobbyCode]application.SessionStatus{
				session.Code: session,
			},
		}

		h := handler.NewSessionsHandler(relay)
		router.GET("/sessions", h.List)
		router.GET("/sessions/:code", h.Get)
	})

	It("lists live sessions with the staged count", func() {
		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp application.RelayStatus
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Staged).To(Equal(2))
		Expect(resp.Sessions).To(HaveLen(1))
		Expect(resp.Sessions[0].Code).To(Equal(domain.LobbyCode("VerbNounAdjective")))
		Expect(resp.Sessions[0].LastReportedCount).To(HaveValue(Equal(3)))
	})

	It("returns one session by code", func() {
		req := httptest.NewRequest(http.MethodGet, "/sessions/VerbNounAdjective", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["channel"]).To(Equal("chan-9"))
		Expect(resp).NotTo(HaveKey("reconciled"))
	})

	It("returns 404 for an unknown code", func() {
		req := httptest.NewRequest(http.MethodGet, "/sessions/MapleStormRiver", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})

var _ = Describe("CommunitiesHandler", func() {
	It("lists configured communities", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		h := handler.NewCommunitiesHandler(&mockDirectory{communities: []domain.Community{
			{ID: "alpha", Name: "Alpha", Region: "eu", CountChannel: "count-1"},
			{ID: "beta", Name: "Beta"},
		}})
		router.GET("/communities", h.List)

		req := httptest.NewRequest(http.MethodGet, "/communities", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			Communities []map[string]any `json:"communities"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Communities).To(HaveLen(2))
		Expect(resp.Communities[0]["count_channel"]).To(Equal("count-1"))
		Expect(resp.Communities[1]).NotTo(HaveKey("region"))
	})
})
