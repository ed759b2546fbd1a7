package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	session_cache "github.com/Modeva-Ecommerce/marketplace-storefront/cache"
	"github.com/Modeva-Ecommerce/marketplace-storefront/config"
	"github.com/Modeva-Ecommerce/marketplace-storefront/middleware"
	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/Modeva-Ecommerce/marketplace-storefront/seed"
	"github.com/Modeva-Ecommerce/marketplace-storefront/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Message      string               `json:"message"`
	Data         json.RawMessage      `json:"data"`
	Error        bool                 `json:"error"`
	Meta         *models.ResultMeta   `json:"meta"`
	Notification *models.Notification `json:"notification"`
	Rate         *models.RateLimiter  `json:"rate_limit"`
}

type testServer struct {
	t        *testing.T
	router   *gin.Engine
	activity *services.ActivityLogService
	sessions *session_cache.Store
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: 8081, AllowedOrigins: []string{"http://localhost:3000"}},
		Session:   config.SessionConfig{Secret: "test-secret", TTL: time.Hour, SweepInterval: time.Minute},
		RateLimit: config.RateLimitConfig{Requests: 1000, Window: time.Minute},
		Upload:    config.UploadConfig{MaxImages: 5, MaxImageBytes: 1 << 20, MaxFormBytes: 8 << 20},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)

	tokens, err := services.NewSessionTokenService(cfg.Session.Secret, cfg.Session.TTL)
	require.NoError(t, err)

	ts := &testServer{
		t:        t,
		activity: services.NewActivityLogService(zap.NewNop(), 50),
		sessions: session_cache.NewStore(ds.Reviews, session_cache.WithTTL(cfg.Session.TTL)),
	}
	ts.router = NewRouter(Dependencies{
		Config:    cfg,
		Catalog:   ds.Products,
		Sessions:  ts.sessions,
		Tokens:    tokens,
		Activity:  ts.activity,
		RateStore: middleware.NewMemoryRateStore(),
		Log:       zap.NewNop(),
	})
	return ts
}

// client keeps the session token between requests, like a browser tab.
type client struct {
	ts    *testServer
	token string
}

func (ts *testServer) newClient() *client { return &client{ts: ts} }

func (cl *client) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t := cl.ts.t
	t.Helper()
	if cl.token != "" {
		req.Header.Set(middleware.SessionHeader, cl.token)
	}
	w := httptest.NewRecorder()
	cl.ts.router.ServeHTTP(w, req)
	if tok := w.Header().Get(middleware.SessionHeader); tok != "" {
		cl.token = tok
	}

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (cl *client) get(path string) (*httptest.ResponseRecorder, envelope) {
	return cl.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (cl *client) postJSON(path string, body any) (*httptest.ResponseRecorder, envelope) {
	raw, err := json.Marshal(body)
	require.NoError(cl.ts.t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return cl.do(req)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func cardNames(cards []models.StorefrontProductResponse) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

// ════════════════════════════════════════════════════════════
// Catalog
// ════════════════════════════════════════════════════════════

func TestSearchProducts(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"text", url.Values{"q": {"backpack"}}, []string{"Minimalist Travel Backpack"}},
		{"category and max price", url.Values{"category": {"Electronics"}, "maxPrice": {"900"}},
			[]string{"Wireless Premium Headphones", "Flagship Smartphone Pro"}},
		{"comma separated categories", url.Values{"category": {"Home & Office,Accessories"}, "sortBy": {"price-high"}},
			[]string{"Classic Leather Watch", "Minimalist Travel Backpack", "Modern LED Desk Lamp"}},
		{"malformed bounds ignored", url.Values{"q": {"lamp"}, "minPrice": {"abc"}},
			[]string{"Modern LED Desk Lamp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := cl.get("/api/v1/store/products?" + tt.query.Encode())
			require.Equal(t, http.StatusOK, w.Code)

			cards := decodeData[[]models.StorefrontProductResponse](t, env)
			assert.Equal(t, tt.want, cardNames(cards))
			require.NotNil(t, env.Meta)
			assert.Equal(t, len(tt.want), env.Meta.Total)
		})
	}
}

func TestSearchSortPriceLow(t *testing.T) {
	ts := newTestServer(t, testConfig())
	_, env := ts.newClient().get("/api/v1/store/products?sortBy=price-low")

	cards := decodeData[[]models.StorefrontProductResponse](t, env)
	require.Len(t, cards, 6)
	assert.Equal(t, "Modern LED Desk Lamp", cards[0].Name)
	assert.Equal(t, "Mirrorless Camera Kit", cards[5].Name)
	assert.Equal(t, "79.99", cards[0].Price.String())
}

func TestHome(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w, env := ts.newClient().get("/api/v1/store/home")
	require.Equal(t, http.StatusOK, w.Code)

	home := decodeData[models.StorefrontHome](t, env)
	assert.Len(t, home.Featured, 6)
	assert.Equal(t, []string{"Mirrorless Camera Kit", "Minimalist Travel Backpack", "Flagship Smartphone Pro"}, cardNames(home.TopRated))
}

func TestCategoriesAndFilterMetadata(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	_, env := cl.get("/api/v1/store/categories")
	cats := decodeData[models.StorefrontCategories](t, env)
	assert.Equal(t, []string{"Electronics", "Accessories", "Home & Office"}, cats.Catalog)
	assert.Equal(t, models.ListingCategories, cats.Listing)

	_, env = cl.get("/api/v1/store/filters/metadata")
	meta := decodeData[models.FilterMetadata](t, env)
	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, "79.99", meta.PriceRange.Min.String())
	assert.Equal(t, "1299.99", meta.PriceRange.Max.String())
	assert.Equal(t, models.SortKeys, meta.SortKeys)
}

func TestProductDetail(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	w, env := cl.get("/api/v1/store/products/1")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeData[models.ProductDetailResponse](t, env)
	assert.Equal(t, "Wireless Premium Headphones", detail.Product.Name)
	assert.Len(t, detail.Reviews, 2)

	_, env = cl.get("/api/v1/store/products/5")
	detail = decodeData[models.ProductDetailResponse](t, env)
	assert.NotNil(t, detail.Reviews)
	assert.Empty(t, detail.Reviews)
}

func TestProductNotFound(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	for _, path := range []string{
		"/api/v1/store/products/999",
		"/api/v1/store/products/999/reviews",
	} {
		w, env := cl.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.True(t, env.Error)

		nf := decodeData[models.NotFoundResponse](t, env)
		assert.Equal(t, "999", nf.ID)
		assert.Equal(t, "/search", nf.Links["back"])
	}

	w, _ := cl.do(httptest.NewRequest(http.MethodPost, "/api/v1/store/products/999/cart", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ════════════════════════════════════════════════════════════
// Reviews
// ════════════════════════════════════════════════════════════

func TestSubmitReviewRoundTrip(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	w, env := cl.postJSON("/api/v1/store/products/1/reviews", models.ReviewRequest{Rating: 4, Comment: "Great product"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, env.Notification)
	assert.Equal(t, "Review Submitted!", env.Notification.Title)
	assert.Equal(t, "Thank you for your feedback.", env.Notification.Description)
	assert.Equal(t, models.VariantDefault, env.Notification.Variant)

	review := decodeData[models.Review](t, env)
	assert.Equal(t, "You", review.UserName)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, time.Now().UTC().Format(models.DateLayout), review.Date)

	_, env = cl.get("/api/v1/store/products/1/reviews")
	list := decodeData[[]models.Review](t, env)
	require.Len(t, list, 3)
	assert.Equal(t, review, list[0])
	assert.Equal(t, 3, env.Meta.Total)

	_, env = cl.get("/api/v1/store/products/2/reviews")
	assert.Len(t, decodeData[[]models.Review](t, env), 1, "other products unaffected")
}

func TestReviewsAreSessionScoped(t *testing.T) {
	ts := newTestServer(t, testConfig())
	alice := ts.newClient()
	bob := ts.newClient()

	w, _ := alice.postJSON("/api/v1/store/products/1/reviews", models.ReviewRequest{Rating: 5, Comment: "Mine"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, env := bob.get("/api/v1/store/products/1/reviews")
	assert.Len(t, decodeData[[]models.Review](t, env), 2)

	_, env = alice.get("/api/v1/store/products/1/reviews")
	assert.Len(t, decodeData[[]models.Review](t, env), 3)
}

func TestSubmitReviewRejectsBlankComment(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	w, env := cl.postJSON("/api/v1/store/products/1/reviews", models.ReviewRequest{Rating: 5, Comment: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.True(t, env.Error)
	require.NotNil(t, env.Notification)
	assert.Equal(t, models.VariantDestructive, env.Notification.Variant)

	_, env = cl.get("/api/v1/store/products/1/reviews")
	assert.Len(t, decodeData[[]models.Review](t, env), 2)
}

func TestSubmitReviewRatingDefaultsAndClamp(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	_, env := cl.postJSON("/api/v1/store/products/3/reviews", map[string]any{"comment": "no rating"})
	assert.Equal(t, 5, decodeData[models.Review](t, env).Rating)

	_, env = cl.postJSON("/api/v1/store/products/3/reviews", models.ReviewRequest{Rating: 9, Comment: "too high"})
	assert.Equal(t, 5, decodeData[models.Review](t, env).Rating)

	_, env = cl.postJSON("/api/v1/store/products/3/reviews", models.ReviewRequest{Rating: -2, Comment: "too low"})
	assert.Equal(t, 1, decodeData[models.Review](t, env).Rating)
}

func TestSubmitReviewBadBody(t *testing.T) {
	ts := newTestServer(t, testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/store/products/1/reviews", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w, env := ts.newClient().do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.Error)
}

// ════════════════════════════════════════════════════════════
// Cart and auth forms
// ════════════════════════════════════════════════════════════

func TestAddToCart(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w, env := ts.newClient().do(httptest.NewRequest(http.MethodPost, "/api/v1/store/products/2/cart", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, env.Notification)
	assert.Equal(t, "Added to Cart!", env.Notification.Title)
	assert.Equal(t, "Minimalist Travel Backpack has been added to your cart.", env.Notification.Description)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	w, env := cl.postJSON("/api/v1/auth/login", models.LoginRequest{Email: "sam@example.com", Password: "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login Successful!", env.Notification.Title)
	assert.Equal(t, "Welcome back to MarketPlace", env.Notification.Description)

	w, env = cl.postJSON("/api/v1/auth/login", map[string]string{"email": "not-an-email", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.VariantDestructive, env.Notification.Variant)
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	req := models.RegisterRequest{Name: "Sam", Email: "sam@example.com", Password: "pw", ConfirmPassword: "pw"}
	w, env := cl.postJSON("/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Account Created!", env.Notification.Title)
	assert.Equal(t, "Welcome to MarketPlace", env.Notification.Description)

	req.ConfirmPassword = "different"
	w, env = cl.postJSON("/api/v1/auth/register", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error", env.Notification.Title)
	assert.Equal(t, "Passwords do not match", env.Notification.Description)
}

// ════════════════════════════════════════════════════════════
// Seller listing
// ════════════════════════════════════════════════════════════

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 24)...)

func listingRequest(t *testing.T, fields map[string][]string, files map[string][]byte, order []string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for _, name := range order {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seller/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validListingFields() map[string][]string {
	return map[string][]string{
		"name":        {"Canvas Tote"},
		"category":    {"Accessories"},
		"price":       {"39.9"},
		"description": {"Roomy everyday tote."},
		"features":    {"Water resistant", ""},
	}
}

func TestCreateListing(t *testing.T) {
	ts := newTestServer(t, testConfig())

	files := map[string][]byte{"readme.txt": []byte("plain text, not an image")}
	order := []string{"readme.txt"}
	for _, n := range []string{"1.png", "2.png", "3.png", "4.png", "5.png", "6.png"} {
		files[n] = pngBytes
		order = append(order, n)
	}

	w, env := ts.newClient().do(listingRequest(t, validListingFields(), files, order))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Product Listed!", env.Notification.Title)

	listing := decodeData[models.ListingResponse](t, env)
	assert.Equal(t, "39.90", listing.Price)
	assert.Equal(t, []string{"Water resistant"}, listing.Features)
	require.Len(t, listing.Images, 5)
	assert.Equal(t, "1.png", listing.Images[0].Name)
	assert.True(t, listing.Images[0].Main)
	assert.Equal(t, "5.png", listing.Images[4].Name)
}

func TestCreateListingValidation(t *testing.T) {
	ts := newTestServer(t, testConfig())

	missing := validListingFields()
	delete(missing, "description")
	w, env := ts.newClient().do(listingRequest(t, missing, map[string][]byte{"a.png": pngBytes}, []string{"a.png"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all required fields", env.Notification.Description)

	w, env = ts.newClient().do(listingRequest(t, validListingFields(), nil, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please upload at least one product image", env.Notification.Description)
	assert.Equal(t, models.VariantDestructive, env.Notification.Variant)
}

func TestCreateListingTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxFormBytes = 1 << 10
	ts := newTestServer(t, cfg)

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 8<<10)...)
	w, env := ts.newClient().do(listingRequest(t, validListingFields(), map[string][]byte{"big.png": big}, []string{"big.png"}))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.True(t, env.Error)
	require.NotNil(t, env.Notification)
	assert.Equal(t, "Your upload is too large. Please use fewer or smaller images", env.Notification.Description)
	assert.Equal(t, models.VariantDestructive, env.Notification.Variant)
}

// ════════════════════════════════════════════════════════════
// Cross-cutting
// ════════════════════════════════════════════════════════════

func TestActivityIsLogged(t *testing.T) {
	ts := newTestServer(t, testConfig())
	cl := ts.newClient()

	cl.postJSON("/api/v1/store/products/1/reviews", models.ReviewRequest{Rating: 5, Comment: ""})
	cl.postJSON("/api/v1/store/products/1/reviews", models.ReviewRequest{Rating: 5, Comment: "ok"})
	cl.get("/api/v1/store/products/1")

	recent := ts.activity.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "submitted_review", recent[0].Action)
	assert.Equal(t, models.StatusSuccess, recent[0].Status)
	assert.Equal(t, models.StatusFailed, recent[1].Status)
	assert.Equal(t, recent[0].SessionID, recent[1].SessionID)
	assert.NotEmpty(t, recent[0].SessionID)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Requests = 2
	ts := newTestServer(t, cfg)
	cl := ts.newClient()

	for i := 0; i < 2; i++ {
		w, env := cl.get("/api/v1/store/categories")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Rate)
	}
	w, _ := cl.get("/api/v1/store/categories")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestThrottledRequestsDoNotStartSessions(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Requests = 2
	ts := newTestServer(t, cfg)

	throttled := 0
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/home", nil))
		if w.Code == http.StatusTooManyRequests {
			throttled++
			assert.Empty(t, w.Header().Get(middleware.SessionHeader))
		}
	}

	assert.Equal(t, 48, throttled)
	assert.Equal(t, 2, ts.sessions.Len())
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w, env := ts.newClient().get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", env.Message)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, testConfig())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/store/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
