package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/errs"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string {
	return string(s)
}

// newFakeBackend 以chi組出測試用後端
func newFakeBackend(t *testing.T, register func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", register)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListProductsEncodesFilterAsQuery(t *testing.T) {
	var gotQuery map[string]string
	server := newFakeBackend(t, func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
			gotQuery = map[string]string{
				"category": req.URL.Query().Get("category"),
				"inStock":  req.URL.Query().Get("inStock"),
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data": []map[string]any{
					{"id": "s1", "name": "TMT Bar - Grade 550D", "category": "steel", "price": 65000, "unit": "Ton", "inStock": true},
				},
			})
		})
	})

	inStock := true
	api := NewCatalogAPI(NewClient(server.URL + "/api"))
	products, err := api.ListProducts(context.Background(), model.ProductFilter{
		Category: "steel",
		InStock:  &inStock,
	})

	require.NoError(t, err)
	require.Equal(t, "steel", gotQuery["category"])
	require.Equal(t, "true", gotQuery["inStock"])
	require.Len(t, products, 1)
	require.Equal(t, "TMT Bar - Grade 550D", products[0].Name)
	require.True(t, products[0].Price.Equal(decimal.NewFromInt(65000)))
}

func TestGetProductNotFoundMapsToNotFoundCode(t *testing.T) {
	server := newFakeBackend(t, func(r chi.Router) {
		r.Get("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"message": "Product not found",
			})
		})
	})

	api := NewCatalogAPI(NewClient(server.URL + "/api"))
	_, err := api.GetProduct(context.Background(), "nonexistent")

	require.Error(t, err)
	require.True(t, errs.IsCode(err, errs.NotFoundCode))
	require.Contains(t, err.Error(), "Product not found")
}

func TestSignInFailureSurfacesBackendMessage(t *testing.T) {
	server := newFakeBackend(t, func(r chi.Router) {
		r.Post("/auth/signin", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Invalid credentials",
			})
		})
	})

	api := NewAuthAPI(NewClient(server.URL + "/api"))
	_, _, err := api.SignIn(context.Background(), "rajesh@example.com", "wrong")

	require.Error(t, err)
	require.True(t, errs.IsCode(err, errs.UnauthenticatedCode))
	//後端message原樣帶出
	require.Contains(t, err.Error(), "Invalid credentials")
}

func TestBusinessFailureWithoutMessageUsesFallback(t *testing.T) {
	server := newFakeBackend(t, func(r chi.Router) {
		r.Post("/auth/signin", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
		})
	})

	api := NewAuthAPI(NewClient(server.URL + "/api"))
	_, _, err := api.SignIn(context.Background(), "a@b.c", "x")

	require.Error(t, err)
	require.Contains(t, err.Error(), errs.ErrStrMap[errs.BadRequestCode])
}

func TestBearerTokenAttachedFreshPerRequest(t *testing.T) {
	var gotAuth string
	server := newFakeBackend(t, func(r chi.Router) {
		r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get(constants.AuthorizationHeaderKey)
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"user":    map[string]any{"id": "u1", "name": "Rajesh", "email": "rajesh@example.com"},
			})
		})
	})

	api := NewAuthAPI(NewClient(server.URL+"/api", WithTokenProvider(staticToken("token-abc"))))
	user, err := api.Me(context.Background())

	require.NoError(t, err)
	require.Equal(t, "Bearer token-abc", gotAuth)
	require.Equal(t, "Rajesh", user.Name)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hasAuth bool
	server := newFakeBackend(t, func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, req *http.Request) {
			_, hasAuth = req.Header[constants.AuthorizationHeaderKey]
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
		})
	})

	api := NewCatalogAPI(NewClient(server.URL+"/api", WithTokenProvider(staticToken(""))))
	_, err := api.ListProducts(context.Background(), model.ProductFilter{})

	require.NoError(t, err)
	require.False(t, hasAuth, "無token時不該帶Authorization header")
}

func TestConnectionFailureMapsToNetworkErrorCode(t *testing.T) {
	server := newFakeBackend(t, func(r chi.Router) {})
	url := server.URL
	server.Close()

	api := NewCatalogAPI(NewClient(url + "/api"))
	_, err := api.ListProducts(context.Background(), model.ProductFilter{})

	require.Error(t, err)
	require.True(t, errs.IsCode(err, errs.NetworkErrorCode))
	require.Contains(t, err.Error(), "unable to connect to server")
}

func TestReviewListDecodesPageAndUserReview(t *testing.T) {
	var gotQuery map[string]string
	server := newFakeBackend(t, func(r chi.Router) {
		r.Get("/reviews/{productId}", func(w http.ResponseWriter, req *http.Request) {
			gotQuery = map[string]string{
				"sort":  req.URL.Query().Get("sort"),
				"page":  req.URL.Query().Get("page"),
				"limit": req.URL.Query().Get("limit"),
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"reviews": []map[string]any{
					{"id": "r1", "rating": 5, "comment": "Excellent quality TMT bars.", "helpfulCount": 3},
				},
				"stats":           map[string]any{"average": 4.5, "distribution": []int{0, 0, 1, 0, 1}, "total": 2},
				"page":            1,
				"totalPages":      1,
				"userHasReviewed": true,
				"userReview":      map[string]any{"id": "r1", "rating": 5},
			})
		})
	})

	api := NewReviewAPI(NewClient(server.URL + "/api"))
	page, err := api.List(context.Background(), "s1", constants.ReviewSortHelpful, 1, 5)

	require.NoError(t, err)
	require.Equal(t, "helpful", gotQuery["sort"])
	require.Equal(t, "1", gotQuery["page"])
	require.Equal(t, "5", gotQuery["limit"])
	require.Len(t, page.Reviews, 1)
	require.Equal(t, 2, page.Stats.Total)
	require.True(t, page.UserHasReviewed)
	require.Equal(t, "r1", page.UserReview.ID)
}

func TestVoteHelpfulReturnsServerCount(t *testing.T) {
	server := newFakeBackend(t, func(r chi.Router) {
		r.Post("/reviews/{reviewId}/helpful", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"helpfulCount": 7},
			})
		})
	})

	api := NewReviewAPI(NewClient(server.URL + "/api"))
	count, err := api.VoteHelpful(context.Background(), "r1")

	require.NoError(t, err)
	require.Equal(t, 7, count)
}

func TestSubmitEnquirySendsPayload(t *testing.T) {
	var got model.EnquiryRequest
	server := newFakeBackend(t, func(r chi.Router) {
		r.Post("/enquiries", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"id": "e1"},
			})
		})
	})

	api := NewEnquiryAPI(NewClient(server.URL + "/api"))
	confirmation, err := api.Submit(context.Background(), model.EnquiryRequest{
		Customer: model.EnquiryCustomer{Name: "Rajesh", Email: "rajesh@example.com"},
		Items: []model.EnquiryItem{
			{ProductID: "s1", Name: "TMT Bar", Quantity: 2, Unit: "Ton"},
		},
		Source: "cart",
	})

	require.NoError(t, err)
	require.Equal(t, "e1", confirmation.EnquiryID)
	require.Equal(t, "cart", got.Source)
	require.Len(t, got.Items, 1)
	require.Equal(t, 2, got.Items[0].Quantity)
}
