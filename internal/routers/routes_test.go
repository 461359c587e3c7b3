package routers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtual-product-studio/api/internal"
	"virtual-product-studio/api/internal/container"
	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/services"
	"virtual-product-studio/api/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reviews := services.NewReviewService(data.Reviews())
	catalog := services.NewCatalogService(data.Products(), data.Categories(), reviews)
	sc := container.NewServiceContainer(catalog, reviews, session.NewRegistry(time.Hour), internal.NopPublisher{})
	return InitRoute(sc, nil, 1000)
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogRoutes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/v1/ping",
		"/v1/products",
		"/v1/products/mobile",
		"/v1/products/mobile/price",
		"/v1/products/mobile/defaults",
		"/v1/products/mobile/reviews",
		"/v1/categories",
		"/v1/device-types/mobile/products",
		"/v1/catalog/groups",
		"/v1/catalog/facets",
	} {
		w := serve(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSessionRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodPost, "/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.SessionSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	base := "/v1/sessions/" + created.Data.Id

	w = serve(router, http.MethodPost, base+"/wishlist", models.ConfigurationRequest{ProductId: "watch"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(router, http.MethodGet, base+"/wishlist/contains/watch", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")

	w = serve(router, http.MethodPost, base+"/compare", models.ConfigurationRequest{ProductId: "mobile"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(router, http.MethodGet, base+"/compare/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Data models.SessionSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Data.WishlistCount)
	assert.Equal(t, 1, summary.Data.CompareCount)

	w = serve(router, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(router, http.MethodGet, base+"/cart", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownSessionIsRejected(t *testing.T) {
	router := newTestRouter(t)
	w := serve(router, http.MethodGet, "/v1/sessions/unknown/orders", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
