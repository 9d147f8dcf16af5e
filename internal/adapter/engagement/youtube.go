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

var youtubeID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// YouTube reads video statistics from the YouTube Data API.
type YouTube struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewYouTube(client *http.Client, baseURL, apiKey string) *YouTube {
	return &YouTube{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

func (y *YouTube) Name() string { return "youtube" }

type youtubeResponse struct {
	Items []struct {
		Statistics struct {
			ViewCount    count `json:"viewCount"`
			LikeCount    count `json:"likeCount"`
			CommentCount count `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (y *YouTube) Fetch(ctx context.Context, assetURL string) (domain.Metrics, error) {
	id, ok := YouTubeVideoID(assetURL)
	if !ok {
		return domain.Metrics{}, fmt.Errorf("%w: no video id in %q", errNoData, assetURL)
	}

	q := url.Values{}
	q.Set("part", "statistics")
	q.Set("id", id)
	q.Set("key", y.apiKey)

	var resp youtubeResponse
	if err := doJSON(ctx, y.client, http.MethodGet, y.baseURL+"/videos?"+q.Encode(), nil, &resp); err != nil {
		return domain.Metrics{}, err
	}
	if len(resp.Items) == 0 {
		return domain.Metrics{}, fmt.Errorf("%w: video %s not found", errNoData, id)
	}
	st := resp.Items[0].Statistics
	return domain.Metrics{
		Views:    st.ViewCount.null(),
		Likes:    st.LikeCount.null(),
		Comments: st.CommentCount.null(),
	}, nil
}

// YouTubeVideoID extracts the video id from the usual YouTube URL shapes.
func YouTubeVideoID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var id string
	switch {
	case host == "youtu.be":
		id = strings.Trim(u.Path, "/")
	case host == "youtube.com" || host == "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		for _, prefix := range []string{"/v/", "/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id = strings.TrimPrefix(u.Path, prefix)
				break
			}
		}
	default:
		return "", false
	}
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}
	return id, youtubeID.MatchString(id)
}
