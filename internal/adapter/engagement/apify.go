package engagement

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"viewpay/internal/core/domain"
)

const instagramActor = "apify~instagram-scraper"

var instagramPost = regexp.MustCompile(`instagram\.com/(?:[^/]+/)?(?:p|reel|reels|tv)/([A-Za-z0-9_-]+)`)

// Apify reads Instagram post counters by running the Apify Instagram scraper
// synchronously.
type Apify struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewApify(client *http.Client, baseURL, token string) *Apify {
	return &Apify{client: client, baseURL: strings.TrimRight(baseURL, "/"), token: token}
}

func (a *Apify) Name() string { return "apify" }

type apifyInput struct {
	DirectURLs   []string `json:"directUrls"`
	ResultsType  string   `json:"resultsType"`
	ResultsLimit int      `json:"resultsLimit"`
}

type apifyItem struct {
	VideoPlayCount count `json:"videoPlayCount"`
	VideoViewCount count `json:"videoViewCount"`
	LikesCount     count `json:"likesCount"`
	CommentsCount  count `json:"commentsCount"`
}

func (a *Apify) Fetch(ctx context.Context, assetURL string) (domain.Metrics, error) {
	if !instagramPost.MatchString(assetURL) {
		return domain.Metrics{}, fmt.Errorf("%w: no instagram shortcode in %q", errNoData, assetURL)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		a.baseURL, instagramActor, url.QueryEscape(a.token))
	input := apifyInput{DirectURLs: []string{assetURL}, ResultsType: "posts", ResultsLimit: 1}

	var items []apifyItem
	if err := doJSON(ctx, a.client, http.MethodPost, endpoint, input, &items); err != nil {
		return domain.Metrics{}, err
	}
	if len(items) == 0 {
		return domain.Metrics{}, fmt.Errorf("%w: scraper returned no items", errNoData)
	}
	item := items[0]
	views := item.VideoPlayCount
	if !views.set {
		views = item.VideoViewCount
	}
	return domain.Metrics{
		Views:    views.null(),
		Likes:    item.LikesCount.null(),
		Comments: item.CommentsCount.null(),
	}, nil
}
