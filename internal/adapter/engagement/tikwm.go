package engagement

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"viewpay/internal/core/domain"
)

// Tikwm reads TikTok video counters through the public tikwm.com API.
type Tikwm struct {
	client  *http.Client
	baseURL string
}

func NewTikwm(client *http.Client, baseURL string) *Tikwm {
	return &Tikwm{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (t *Tikwm) Name() string { return "tikwm" }

type tikwmResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		PlayCount    count `json:"play_count"`
		DiggCount    count `json:"digg_count"`
		CommentCount count `json:"comment_count"`
	} `json:"data"`
}

func (t *Tikwm) Fetch(ctx context.Context, assetURL string) (domain.Metrics, error) {
	var resp tikwmResponse
	endpoint := t.baseURL + "/api/?url=" + url.QueryEscape(assetURL)
	if err := doJSON(ctx, t.client, http.MethodGet, endpoint, nil, &resp); err != nil {
		return domain.Metrics{}, err
	}
	if resp.Code != 0 || resp.Data == nil {
		return domain.Metrics{}, fmt.Errorf("%w: tikwm code %d: %s", errNoData, resp.Code, resp.Msg)
	}
	return domain.Metrics{
		Views:    resp.Data.PlayCount.null(),
		Likes:    resp.Data.DiggCount.null(),
		Comments: resp.Data.CommentCount.null(),
	}, nil
}
