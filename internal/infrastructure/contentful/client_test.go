package contentful

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcoffeehub/backend/internal/domain"
)

const productsFixture = `{
  "data": {
    "coffeeProductCollection": {
      "items": [
        {
          "name": "Cold Brew",
          "slug": "cold-brew",
          "category": "drinks",
          "description": {"json": {"nodeType": "document", "content": [
            {"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "Smooth and cold."}]}
          ]}}
        },
        null,
        {"name": "House Blend", "slug": "house-blend", "category": "beans", "description": null}
      ]
    }
  }
}`

const blogPostsFixture = `{
  "data": {
    "blogPostCollection": {
      "items": [
        {
          "title": "The Art of Pour Over",
          "slug": "art-of-pour-over",
          "excerpt": "Master manual brewing",
          "body": {"json": {"nodeType": "document", "content": []}},
          "category": "brewing",
          "tags": ["v60", "technique"],
          "publishDate": "2024-03-01T09:00:00.000Z"
        },
        {
          "title": "Shop News",
          "slug": "shop-news",
          "excerpt": null,
          "body": null,
          "category": null,
          "tags": null,
          "publishDate": "2024-02-10T08:30"
        }
      ]
    }
  }
}`

type capturedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          graphQLRequest
}

func newTestServer(t *testing.T, status int, response string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.Method = r.Method
			captured.Path = r.URL.Path
			captured.Authorization = r.Header.Get("Authorization")
			captured.ContentType = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &captured.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(serverURL string) *Client {
	return NewClient(Options{
		BaseURL:     serverURL,
		SpaceID:     "space123",
		AccessToken: "token-abc",
		Timeout:     5 * time.Second,
	}, nil)
}

func TestClient_ListProducts(t *testing.T) {
	var captured capturedRequest
	server := newTestServer(t, http.StatusOK, productsFixture, &captured)

	products, err := newTestClient(server.URL).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Cold Brew", products[0].Name)
	assert.Equal(t, "cold-brew", products[0].Slug)
	require.NotNil(t, products[0].Description)
	require.Len(t, products[0].Description.Content, 1)
	assert.Equal(t, "house-blend", products[1].Slug)
	assert.Nil(t, products[1].Description)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/content/v1/spaces/space123/environments/master", captured.Path)
	assert.Equal(t, "Bearer token-abc", captured.Authorization)
	assert.Equal(t, "application/json", captured.ContentType)
	assert.Contains(t, captured.Body.Query, "coffeeProductCollection")
	assert.Empty(t, captured.Body.Variables)
}

func TestClient_ListBlogPosts(t *testing.T) {
	server := newTestServer(t, http.StatusOK, blogPostsFixture, nil)

	posts, err := newTestClient(server.URL).ListBlogPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "The Art of Pour Over", first.Title)
	assert.Equal(t, "Master manual brewing", first.Excerpt)
	assert.Equal(t, "brewing", first.Category)
	assert.Equal(t, []string{"v60", "technique"}, first.Tags)
	assert.True(t, first.PublishDate.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))

	second := posts[1]
	assert.Empty(t, second.Excerpt)
	assert.Empty(t, second.Category)
	assert.Nil(t, second.Tags)
	assert.Nil(t, second.Body)
	assert.True(t, second.PublishDate.Equal(time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)))
}

func TestClient_ListRecentBlogPosts(t *testing.T) {
	var captured capturedRequest
	server := newTestServer(t, http.StatusOK, blogPostsFixture, &captured)

	_, err := newTestClient(server.URL).ListRecentBlogPosts(context.Background())

	require.NoError(t, err)
	assert.Contains(t, captured.Body.Query, "publishDate_DESC")
}

func TestClient_GetProductBySlug(t *testing.T) {
	t.Run("sends slug variable", func(t *testing.T) {
		var captured capturedRequest
		server := newTestServer(t, http.StatusOK, productsFixture, &captured)

		product, err := newTestClient(server.URL).GetProductBySlug(context.Background(), "cold-brew")

		require.NoError(t, err)
		assert.Equal(t, "Cold Brew", product.Name)
		assert.Equal(t, "cold-brew", captured.Body.Variables["slug"])
		assert.Contains(t, captured.Body.Query, "limit: 1")
	})

	t.Run("empty collection is not found", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"data":{"coffeeProductCollection":{"items":[]}}}`, nil)

		_, err := newTestClient(server.URL).GetProductBySlug(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClient_GetBlogPostBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, blogPostsFixture, nil)

		post, err := newTestClient(server.URL).GetBlogPostBySlug(context.Background(), "art-of-pour-over")

		require.NoError(t, err)
		assert.Equal(t, "art-of-pour-over", post.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{"data":{"blogPostCollection":{"items":[]}}}`, nil)

		_, err := newTestClient(server.URL).GetBlogPostBySlug(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		contains string
	}{
		{
			name:     "non-200 status",
			status:   http.StatusUnauthorized,
			response: `{"message":"access token invalid"}`,
			contains: "status 401",
		},
		{
			name:     "null data with errors",
			status:   http.StatusOK,
			response: `{"data":null,"errors":[{"message":"Query cannot be executed"}]}`,
			contains: "Query cannot be executed",
		},
		{
			name:     "missing data",
			status:   http.StatusOK,
			response: `{}`,
			contains: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.status, tt.response, nil)

			_, err := newTestClient(server.URL).ListProducts(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `not json`, nil)

		_, err := newTestClient(server.URL).ListProducts(context.Background())

		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "failed to decode response"))
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := newTestServer(t, http.StatusOK, `{}`, nil)
		url := server.URL
		server.Close()

		_, err := newTestClient(url).ListProducts(context.Background())

		assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	})
}

func TestClient_PartialData(t *testing.T) {
	response := `{
		"data": {"coffeeProductCollection": {"items": [{"name": "Latte", "slug": "latte", "category": "drinks"}, null]}},
		"errors": [{"message": "Link to entry could not be resolved"}]
	}`
	server := newTestServer(t, http.StatusOK, response, nil)

	products, err := newTestClient(server.URL).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "latte", products[0].Slug)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{SpaceID: "abc"}, nil)

	assert.Equal(t, "https://graphql.contentful.com/content/v1/spaces/abc/environments/master", c.endpoint)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-01T09:00:00Z", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-03-01T09:00:00.000+02:00", time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)},
		{"2024-03-01T09:00", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.True(t, parseDate(tt.value).Equal(tt.want), "parseDate(%q) = %v", tt.value, parseDate(tt.value))
		})
	}
}
