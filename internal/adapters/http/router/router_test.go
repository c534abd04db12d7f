package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bnema/gathering-relay/internal/adapters/http/router"
	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
)

type stubRelay struct{}

func (stubRelay) Status() application.RelayStatus {
	return application.RelayStatus{Sessions: []application.SessionStatus{}}
}

func (stubRelay) Session(domain.LobbyCode) (application.SessionStatus, bool) {
	return application.SessionStatus{}, false
}

type stubDirectory struct{}

func (stubDirectory) Community(domain.CommunityID) (domain.Community, bool) {
	return domain.Community{}, false
}

func (stubDirectory) Communities() []domain.Community { return nil }

func (stubDirectory) Settings() domain.RelaySettings { return domain.RelaySettings{} }

var _ = Describe("ops router", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = router.NewEngine(router.RouterConfig{})
		router.SetupRoutes(engine, stubRelay{}, stubDirectory{})
	})

	It("answers health probes", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveKeyWithValue("status", "ok"))
	})

	It("serves an empty session list", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"sessions":[]`))
	})

	It("recovers from handler panics", func() {
		engine.GET("/boom", func(*gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("internal server error"))
	})

	It("recovers from panics on session routes", func() {
		engine.GET("/debug/:code", func(*gin.Context) { panic("nil session") })

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/VerbNounAdjective", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveKeyWithValue("error", "internal server error"))
	})

	It("returns 404 for unknown routes", func() {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
